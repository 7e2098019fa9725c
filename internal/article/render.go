package article

import "strings"

// Render produces the front-matter document. Values are written verbatim;
// a title containing a double quote yields invalid YAML.
func Render(in Input) string {
	layout := in.Layout
	if layout == "" {
		layout = DefaultLayout
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("layout: " + layout + "\n")
	b.WriteString(`title: "` + in.Title + "\"\n")
	b.WriteString("date: " + DateString(in.Published) + "\n")
	b.WriteString("categories: " + Category(in.Published) + "\n")
	b.WriteString("tags:")
	for _, tag := range in.Tags {
		b.WriteString("\n  - " + tag)
	}
	b.WriteString("\n")
	b.WriteString(renderAuthor(in.Author))
	b.WriteString("\n---\n")
	b.WriteString(in.Description)
	return b.String()
}

func renderAuthor(a Author) string {
	var b strings.Builder
	b.WriteString("author:\n")
	b.WriteString("    name: " + a.Name + "\n")
	if a.Twitter != "" {
		b.WriteString("    twitter: " + a.Twitter + "\n")
	}
	if a.GitHub != "" {
		b.WriteString("    github: " + a.GitHub + "\n")
	}
	b.WriteString("    url: " + a.URL)
	return b.String()
}
