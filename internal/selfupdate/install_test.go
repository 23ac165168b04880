package selfupdate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// installed returns an executable stand-in and an option pointing the
// checker at it.
func installed(t *testing.T, content string) (string, Option) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fff")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o755))
	return path, withExecPath(func() (string, error) { return path, nil })
}

func TestUpdateInstallsRelease(t *testing.T) {
	archive := tarGz(t, "fff", []byte("fff 1.1.0"))
	files := map[string][]byte{"fff_Linux_x86_64.tar.gz": archive}
	files[checksumsAsset] = checksums(files)
	srv := releaseServer(t, "v1.1.0", files)
	path, exec := installed(t, "fff 1.0.0")

	c := NewChecker(WithBaseURL(srv.URL), WithPlatform(linux), exec)

	var stages []Stage
	rel, err := c.Update(context.Background(), "v1.0.0", func(s Stage, msg string) {
		stages = append(stages, s)
		assert.NotEmpty(t, msg)
	})
	require.NoError(t, err)
	assert.Equal(t, "v1.1.0", rel.Tag)
	assert.Equal(t, []Stage{StageCheck, StageDownload, StageVerify, StageInstall, StageDone}, stages)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fff 1.1.0", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), ".fff-update-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestUpdateWindowsZip(t *testing.T) {
	archive := zipped(t, "fff.exe", []byte("fff 1.1.0"))
	files := map[string][]byte{"fff_Windows_x86_64.zip": archive}
	files[checksumsAsset] = checksums(files)
	srv := releaseServer(t, "v1.1.0", files)
	path, exec := installed(t, "fff 1.0.0")

	c := NewChecker(WithBaseURL(srv.URL), WithPlatform(Platform{OS: "windows", Arch: "amd64"}), exec)
	_, err := c.Update(context.Background(), "1.0.0", nil)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fff 1.1.0", string(got))
}

func TestUpdateRefusals(t *testing.T) {
	archive := tarGz(t, "fff", []byte("fff 1.1.0"))
	readmeOnly := tarGz(t, "README.md", []byte("hi"))

	tests := []struct {
		name    string
		current string
		files   map[string][]byte
		opts    []Option
		wantErr error
	}{
		{
			name:    "dev build",
			current: DevVersion,
			wantErr: ErrDevBuild,
		},
		{
			name:    "empty version",
			current: "",
			wantErr: ErrDevBuild,
		},
		{
			name:    "already latest",
			current: "v1.1.0",
			files:   map[string][]byte{},
			wantErr: ErrAlreadyLatest,
		},
		{
			name:    "no release",
			current: "v1.0.0",
			wantErr: ErrNoRelease,
		},
		{
			name:    "no archive for platform",
			current: "v1.0.0",
			files:   map[string][]byte{"fff_Darwin_all.tar.gz": archive},
			wantErr: ErrNoAsset,
		},
		{
			name:    "no checksums",
			current: "v1.0.0",
			files:   map[string][]byte{"fff_Linux_x86_64.tar.gz": archive},
			wantErr: ErrNoAsset,
		},
		{
			name:    "checksum mismatch",
			current: "v1.0.0",
			files: map[string][]byte{
				"fff_Linux_x86_64.tar.gz": archive,
				checksumsAsset:            []byte(sha([]byte("other")) + "  fff_Linux_x86_64.tar.gz\n"),
			},
			wantErr: ErrChecksum,
		},
		{
			name:    "archive not listed",
			current: "v1.0.0",
			files: map[string][]byte{
				"fff_Linux_x86_64.tar.gz": archive,
				checksumsAsset:            []byte(sha(archive) + "  fff_Linux_arm64.tar.gz\n"),
			},
			wantErr: ErrChecksum,
		},
		{
			name:    "archive too large",
			current: "v1.0.0",
			files: map[string][]byte{
				"fff_Linux_x86_64.tar.gz": archive,
				checksumsAsset:            []byte(sha(archive) + "  fff_Linux_x86_64.tar.gz\n"),
			},
			opts:    []Option{WithMaxDownload(int64(len(archive) - 1))},
			wantErr: ErrTooLarge,
		},
		{
			name:    "binary missing from archive",
			current: "v1.0.0",
			files: map[string][]byte{
				"fff_Linux_x86_64.tar.gz": readmeOnly,
				checksumsAsset:            []byte(sha(readmeOnly) + "  fff_Linux_x86_64.tar.gz\n"),
			},
			wantErr: ErrNoBinary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := releaseServer(t, "v1.1.0", tt.files)
			path, exec := installed(t, "fff 1.0.0")
			opts := append([]Option{WithBaseURL(srv.URL), WithPlatform(linux), exec}, tt.opts...)

			rel, err := NewChecker(opts...).Update(context.Background(), tt.current, nil)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, rel)

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "fff 1.0.0", string(got), "executable untouched")
		})
	}
}

func TestChecksumFor(t *testing.T) {
	listing := []byte("ABC123  fff_Linux_x86_64.tar.gz\n" +
		"def456 *fff_Windows_x86_64.zip\n" +
		"malformed\n\n" +
		"a b c\n")

	got, err := checksumFor(listing, "fff_Linux_x86_64.tar.gz")
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)

	got, err = checksumFor(listing, "fff_Windows_x86_64.zip")
	require.NoError(t, err)
	assert.Equal(t, "def456", got)

	_, err = checksumFor(listing, "c")
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestUnpack(t *testing.T) {
	bin, err := unpack("fff_Linux_arm64.tar.gz", tarGz(t, "fff", []byte("elf")), "fff", 1024)
	require.NoError(t, err)
	assert.Equal(t, "elf", string(bin))

	bin, err = unpack("fff_Windows_x86_64.zip", zipped(t, "dist/fff.exe", []byte("pe")), "fff.exe", 1024)
	require.NoError(t, err)
	assert.Equal(t, "pe", string(bin))

	_, err = unpack("fff.rar", nil, "fff", 1024)
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = unpack("fff_Linux_arm64.tar.gz", tarGz(t, "fff", []byte("elf")), "fff", 2)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = unpack("fff_Linux_arm64.tar.gz", []byte("not gzip"), "fff", 1024)
	assert.ErrorContains(t, err, "open gzip")
}

func TestReplaceExecutableKeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fff")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o750))

	require.NoError(t, replaceExecutable(path, []byte("new")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o750), info.Mode().Perm())
}

func TestReplaceExecutableMissingTarget(t *testing.T) {
	err := replaceExecutable(filepath.Join(t.TempDir(), "missing"), []byte("new"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
