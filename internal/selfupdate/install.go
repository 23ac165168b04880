package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
)

// checksumsAsset lists the sha256 of every archive in a release.
const checksumsAsset = "checksums.txt"

// Stage names a step of Update.
type Stage string

const (
	StageCheck    Stage = "check"
	StageDownload Stage = "download"
	StageVerify   Stage = "verify"
	StageInstall  Stage = "install"
	StageDone     Stage = "done"
)

// ProgressFunc receives a human-readable message per stage.
type ProgressFunc func(stage Stage, message string)

// Update installs the latest release over the running executable when it is
// newer than current, and returns the installed release. progress may be
// nil.
func (c *Checker) Update(ctx context.Context, current string, progress ProgressFunc) (*Release, error) {
	if !semver.IsValid(canonical(current)) {
		return nil, ErrDevBuild
	}
	report := func(s Stage, format string, args ...any) {
		if progress != nil {
			progress(s, fmt.Sprintf(format, args...))
		}
	}

	report(StageCheck, "Suche nach neuer Version…")
	rel, err := c.latest(ctx)
	if err != nil {
		return nil, err
	}
	if !newer(rel.Tag, current) {
		return nil, ErrAlreadyLatest
	}

	archiveName, err := c.platform.Archive()
	if err != nil {
		return nil, err
	}
	archive, ok := rel.Asset(archiveName)
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", ErrNoAsset, archiveName, rel.Tag)
	}
	sums, ok := rel.Asset(checksumsAsset)
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", ErrNoAsset, checksumsAsset, rel.Tag)
	}

	report(StageDownload, "Lade %s herunter…", rel.Tag)
	data, err := c.get(ctx, archive.URL, "application/octet-stream", c.maxDownload)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", archiveName, err)
	}
	listing, err := c.get(ctx, sums.URL, "application/octet-stream", maxMetadata)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", checksumsAsset, err)
	}

	report(StageVerify, "Prüfe Prüfsumme…")
	want, err := checksumFor(listing, archiveName)
	if err != nil {
		return nil, err
	}
	if err := verifyChecksum(data, want); err != nil {
		return nil, err
	}

	report(StageInstall, "Installiere…")
	bin, err := unpack(archiveName, data, c.platform.Binary(), c.maxDownload)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", archiveName, err)
	}
	target, err := c.execPath()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}
	if err := replaceExecutable(target, bin); err != nil {
		return nil, err
	}

	report(StageDone, "Aktualisiert auf %s", rel.Tag)
	return rel, nil
}

// checksumFor finds name in a sha256sum listing ("<hex>  <file>" per line,
// with an optional "*" binary marker).
func checksumFor(listing []byte, name string) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(listing))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 && strings.TrimPrefix(fields[1], "*") == name {
			return strings.ToLower(fields[0]), nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("read %s: %w", checksumsAsset, err)
	}
	return "", fmt.Errorf("%w: %s not listed", ErrChecksum, name)
}

func verifyChecksum(data []byte, want string) error {
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); got != want {
		return fmt.Errorf("%w: want %s, got %s", ErrChecksum, want, got)
	}
	return nil
}

// unpack extracts the regular file called binary from a .tar.gz or .zip
// archive, reading at most limit bytes of it.
func unpack(archiveName string, data []byte, binary string, limit int64) ([]byte, error) {
	var (
		r   io.Reader
		err error
	)
	switch {
	case strings.HasSuffix(archiveName, ".tar.gz"):
		r, err = findInTarGz(data, binary)
	case strings.HasSuffix(archiveName, ".zip"):
		r, err = findInZip(data, binary)
	default:
		return nil, fmt.Errorf("%w: archive %s", ErrUnsupported, archiveName)
	}
	if err != nil {
		return nil, err
	}
	if c, ok := r.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}

	bin, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(bin)) > limit {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, binary, limit)
	}
	return bin, nil
}

func findInTarGz(data []byte, binary string) (io.Reader, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s", ErrNoBinary, binary)
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && path.Base(hdr.Name) == binary {
			return tr, nil
		}
	}
}

func findInZip(data []byte, binary string) (io.Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range zr.File {
		if f.Mode().IsRegular() && path.Base(f.Name) == binary {
			return f.Open()
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoBinary, binary)
}

// replaceExecutable writes bin next to target and renames it over target,
// keeping target's permission bits.
func replaceExecutable(target string, bin []byte) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat %s: %w", target, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+binaryName+"-update-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	name := tmp.Name()
	defer func() { _ = os.Remove(name) }()

	if _, err := tmp.Write(bin); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Chmod(name, info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod %s: %w", name, err)
	}
	if err := os.Rename(name, target); err != nil {
		return fmt.Errorf("replace %s: %w", target, err)
	}
	return nil
}
