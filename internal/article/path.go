package article

import (
	"path/filepath"
	"time"
)

// Target is where a rendered article lands:
// <root>/<posts>/m<YYMM>/<YYYY-MM-DD>-<slug>.md
type Target struct {
	PostsDir string
	Folder   string
	File     string
}

func NewTarget(root, postsDir string, published time.Time, slug string) Target {
	posts := filepath.Join(root, postsDir)
	folder := filepath.Join(posts, MonthFolder(published))
	return Target{
		PostsDir: posts,
		Folder:   folder,
		File:     filepath.Join(folder, FileName(published, slug)),
	}
}

// MonthFolder names the month partition, e.g. "m2403" for March 2024.
func MonthFolder(t time.Time) string {
	return "m" + t.Format("0601")
}

func FileName(t time.Time, slug string) string {
	return t.Format("2006-01-02") + "-" + slug + ".md"
}
