package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aweris/ghcas"
	"github.com/aweris/ghcas/internal/store"
)

// isolate keeps user configuration and data out of command runs.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
}

func executeWithErr(t *testing.T, args ...string) (string, string) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return out.String(), errOut.String()
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	out, _ := executeWithErr(t, args...)
	return out
}

func TestHashCommand(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "Hello.TXT")
	require.NoError(t, os.WriteFile(file, []byte("hello\n"), 0o644))

	out := execute(t, "hash", file)
	assert.Equal(t,
		"ce013625030ba8dba906f756967f9e9ca394464a\tb1946ac92492d2347c6235b4d2611184.txt\t"+file+"\n",
		out)
}

func TestURLCommand(t *testing.T) {
	isolate(t)

	out := execute(t, "--owner", "EngiGu", "--repo", "resources", "--branch", "images", "--cdn=false", "url", "2.txt")
	assert.Equal(t, "https://raw.githubusercontent.com/EngiGu/resources/images/2.txt\n", out)

	out = execute(t, "--owner", "EngiGu", "--repo", "resources", "--branch", "images", "--cdn=true", "url", "2.txt")
	assert.Equal(t, "https://cdn.jsdelivr.net/gh/engigu/resources@images/2.txt\n", out)
}

func TestRecordsCommandEmpty(t *testing.T) {
	isolate(t)
	db := filepath.Join(t.TempDir(), "records.db")

	out, errOut := executeWithErr(t, "--db", db, "records", "--uploader", "")
	assert.Equal(t, "(no records)\n", out)
	assert.Equal(t, "0 of 0 records\n", errOut)
}

func TestRecordsCommandCounts(t *testing.T) {
	isolate(t)
	db := filepath.Join(t.TempDir(), "records.db")

	records, err := store.Open(db, store.Options{})
	require.NoError(t, err)
	require.NoError(t, records.AddRecord(context.Background(), "a.png", "github"))
	require.NoError(t, records.AddRecord(context.Background(), "b.png", "other"))
	require.NoError(t, records.Close())

	out, errOut := executeWithErr(t, "--db", db, "records", "--uploader", "github")
	assert.Contains(t, out, "a.png\tgithub\t")
	assert.NotContains(t, out, "b.png")
	assert.Equal(t, "1 of 2 records\n", errOut)
}

type failingRecords struct{ err error }

func (f failingRecords) AddRecord(context.Context, string, string) error { return f.err }

func TestUploadFileKeepsOutcomeWhenRecordFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"commit":{"sha":"c1","committer":{"name":"image bot","email":"image_bot@sooko.club"}}}`)
	}))
	t.Cleanup(srv.Close)

	up, err := ghcas.New("tok", "EngiGu", "resources", "images", "", ghcas.WithAPIURL(srv.URL))
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("hello\n"), 0o644))

	boom := errors.New("database is locked")
	res, err := uploadFile(context.Background(), up, failingRecords{err: boom}, file)
	assert.ErrorIs(t, err, boom)
	assert.True(t, res.outcome.OK())

	var out, errOut bytes.Buffer
	failed := reportUploads(&out, &errOut, []uploadResult{res})
	assert.Zero(t, failed)
	assert.Equal(t, "https://cdn.jsdelivr.net/gh/engigu/resources@images/b1946ac92492d2347c6235b4d2611184.txt\n", out.String())
}

func TestReportUploads(t *testing.T) {
	results := []uploadResult{
		{file: "a.png", name: "x.png", outcome: ghcas.Outcome{Status: ghcas.StatusOK, URL: "https://cdn/x.png"}},
		{file: "b.png", name: "y.png", outcome: ghcas.Outcome{Status: ghcas.StatusFailed, Message: "conflict", URL: "conflict"}},
		{file: "c.png"},
	}

	var out, errOut bytes.Buffer
	failed := reportUploads(&out, &errOut, results)
	assert.Equal(t, 1, failed)
	assert.Equal(t, "https://cdn/x.png\n", out.String())
	assert.Equal(t, "b.png: conflict\n", errOut.String())
}

func TestBarObserver(t *testing.T) {
	var buf bytes.Buffer
	o := &barObserver{w: &buf}

	o.Progress(1, 2)
	o.Progress(2, 2)
	o.Done(2)

	require.NotNil(t, o.bar)
	assert.EqualValues(t, 2, o.bar.Current())
	assert.EqualValues(t, 2, o.bar.Total())
}

func TestBarObserverEmptyRun(t *testing.T) {
	o := &barObserver{w: &bytes.Buffer{}}
	o.Done(0)
	assert.EqualValues(t, 0, o.bar.Current())
}
