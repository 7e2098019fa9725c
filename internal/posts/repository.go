package posts

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

var (
	ErrPostsDirMissing = errors.New("_posts folder does not exist")
	ErrNotFound        = errors.New("article not found")
)

const dateLayout = "2006-01-02 15:04:05"

type Author struct {
	Name    string `yaml:"name"`
	Twitter string `yaml:"twitter"`
	GitHub  string `yaml:"github"`
	URL     string `yaml:"url"`
}

type Post struct {
	Path       string
	Slug       string
	Layout     string
	Title      string
	Date       time.Time
	Categories string
	Tags       []string
	Author     Author
	Body       string
}

type envelope struct {
	Layout     string   `yaml:"layout"`
	Title      string   `yaml:"title"`
	Date       any      `yaml:"date"`
	Categories string   `yaml:"categories"`
	Tags       []string `yaml:"tags"`
	Author     Author   `yaml:"author"`
}

// Repository reads and writes article files below a posts directory.
type Repository struct {
	dir string
}

func NewRepository(dir string) *Repository {
	return &Repository{dir: dir}
}

func (r *Repository) Dir() string {
	return r.dir
}

// EnsureFolder makes sure the month folder exists. Only the folder itself is
// created; its parent must already be there.
func (r *Repository) EnsureFolder(folder string) (bool, error) {
	if _, err := os.Stat(folder); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, err
	}

	if _, err := os.Stat(filepath.Dir(folder)); err != nil {
		if os.IsNotExist(err) {
			return false, ErrPostsDirMissing
		}
		return false, err
	}

	if err := os.Mkdir(folder, 0755); err != nil {
		return false, fmt.Errorf("couldn't create folder %s: %w", folder, err)
	}
	return true, nil
}

func (r *Repository) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (r *Repository) Write(path, doc string) error {
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("couldn't write file %s: %w", path, err)
	}
	return nil
}

// List returns articles newest first. A non-empty month restricts the
// listing to one month folder such as "m2403"; limit <= 0 means no limit.
func (r *Repository) List(limit int, month string) ([]Post, error) {
	if _, err := os.Stat(r.dir); os.IsNotExist(err) {
		return nil, ErrPostsDirMissing
	}

	var posts []Post
	err := filepath.WalkDir(r.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if month != "" && path != r.dir && d.Name() != month {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".md" {
			return nil
		}
		if month != "" && filepath.Base(filepath.Dir(path)) != month {
			return nil
		}

		p, err := Load(path)
		if err != nil {
			slog.Warn("skipping unreadable article", "path", path, "error", err)
			return nil
		}
		posts = append(posts, *p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].Path < posts[j].Path
	})

	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// Get resolves ref as a file path first, then as a slug.
func (r *Repository) Get(ref string) (*Post, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return Load(ref)
	}

	posts, err := r.List(0, "")
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Slug == ref {
			return &posts[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
}

func Load(path string) (*Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var env envelope
	body, err := frontmatter.Parse(bytes.NewReader(data), &env)
	if err != nil {
		return nil, fmt.Errorf("failed to parse front matter: %w", err)
	}

	return &Post{
		Path:       path,
		Slug:       slugFromFile(path),
		Layout:     env.Layout,
		Title:      env.Title,
		Date:       parseDate(env.Date),
		Categories: env.Categories,
		Tags:       env.Tags,
		Author:     env.Author,
		Body:       string(body),
	}, nil
}

// slugFromFile strips the "YYYY-MM-DD-" prefix and ".md" suffix.
func slugFromFile(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), ".md")
	if len(name) > 11 {
		if _, err := time.Parse("2006-01-02", name[:10]); err == nil && name[10] == '-' {
			return name[11:]
		}
	}
	return name
}

func parseDate(v any) time.Time {
	switch d := v.(type) {
	case time.Time:
		return d
	case string:
		for _, layout := range []string{dateLayout, "2006-01-02"} {
			if t, err := time.Parse(layout, d); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}
