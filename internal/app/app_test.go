package app

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyseek/internal/config"
	"storyseek/internal/domain"
	"storyseek/internal/termstore"
)

type stubClient struct {
	targets []string
}

func (s *stubClient) Search(_ context.Context, target string) ([]domain.Story, error) {
	s.targets = append(s.targets, target)
	return []domain.Story{{ObjectID: "1", Title: "hit"}}, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Endpoint = "http://api.test/search?query="
	cfg.StateFile = filepath.Join(dir, "state.toml")
	cfg.LogFile = filepath.Join(dir, "storyseek.log")
	return cfg
}

func TestParseFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts, err := ParseFlags(fs, []string{"-term", "", "-endpoint", "http://x/?q=", "-no-persist"}, true)
	require.NoError(t, err)

	assert.True(t, opts.TermSet)
	assert.Equal(t, "", opts.Term)
	assert.Equal(t, "http://x/?q=", opts.Endpoint)
	assert.True(t, opts.NoPersist)
}

func TestParseFlagsWithoutTerm(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts, err := ParseFlags(fs, nil, true)
	require.NoError(t, err)

	assert.False(t, opts.TermSet)
	assert.False(t, opts.NoPersist)
}

func TestLoadConfigCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, svc := LoadConfig(Options{ConfigPath: path, Endpoint: "http://override/?q="}, nil, true)

	assert.Equal(t, path, svc.Path())
	assert.Equal(t, "http://override/?q=", cfg.Endpoint)
	_, err := os.Stat(path)
	assert.NoError(t, err, "defaults are written on first run")
}

func TestLoadConfigBrokenFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint = ["), 0644))

	cfg, _ := LoadConfig(Options{ConfigPath: path}, nil, true)

	assert.Equal(t, config.DefaultConfig().Endpoint, cfg.Endpoint)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "endpoint = [", string(data), "a broken file is never overwritten")
}

func TestNewStartsFromPersistedTerm(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, termstore.NewFileKV(cfg.StateFile).Set(termstore.DefaultKey, "golang"))
	client := &stubClient{}

	a := New(cfg, Options{}, nil, client)

	assert.Equal(t, "golang", a.Terms.Value())
	assert.Equal(t, cfg.Endpoint+"golang", a.Query.Current())

	assert.True(t, a.Fetcher.Run(context.Background(), a.Query.Current()))
	assert.Equal(t, []string{cfg.Endpoint + "golang"}, client.targets)
	assert.Len(t, a.Stories.State().Data, 1)
}

func TestNewTermFlagOverridesAndPersists(t *testing.T) {
	cfg := testConfig(t)

	a := New(cfg, Options{Term: "rust", TermSet: true}, nil, &stubClient{})
	assert.Equal(t, cfg.Endpoint+"rust", a.Query.Current())

	v, ok, err := termstore.NewFileKV(cfg.StateFile).Get(termstore.DefaultKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "rust", v)
}

func TestNewNoPersistLeavesStateFileAlone(t *testing.T) {
	cfg := testConfig(t)

	a := New(cfg, Options{NoPersist: true}, nil, &stubClient{})
	a.Terms.SetValue("zig")

	_, err := os.Stat(cfg.StateFile)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, cfg.DefaultTerm, a.Query.Term(), "typing never changes the committed query")
}
