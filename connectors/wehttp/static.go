package wehttp

import (
	"bytes"
	"io/fs"
	"net/http"

	"github.com/pkg/errors"

	"github.com/weegigs/wee-webapp-go/we"
)

func serveFile(w http.ResponseWriter, r *http.Request, files fs.FS, name string) error {
	if files == nil {
		return we.NotFound(name)
	}

	info, err := fs.Stat(files, name)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return we.NotFound(name)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", name)
	}

	content, err := fs.ReadFile(files, name)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", name)
	}

	http.ServeContent(w, r, name, info.ModTime(), bytes.NewReader(content))
	return nil
}
