package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/julienpequegnot/articlegen/internal/article"
	"github.com/julienpequegnot/articlegen/internal/posts"
	"github.com/julienpequegnot/articlegen/internal/prompt"
)

var fixedNow = time.Date(2024, time.March, 9, 15, 30, 0, 0, time.UTC)

func answers(lines ...string) *prompt.Console {
	return prompt.NewConsole(strings.NewReader(strings.Join(lines, "\n")+"\n"), io.Discard)
}

// defaultAnswers accepts every default and supplies a two-line description.
func defaultAnswers(confirm ...string) []string {
	lines := []string{
		"", "", "",
		"Hello World",
		"",
		"a,b,c",
		"Jane Doe", "", "", "https://example.com/hello",
		"END",
		"line1", "line2", "END",
	}
	return append(lines, confirm...)
}

func newSession(t *testing.T, root string, p prompt.Prompter, out io.Writer) *Session {
	t.Helper()
	return New(p, out, Options{
		Root:     root,
		Location: time.UTC,
		Now:      func() time.Time { return fixedNow },
	})
}

func setupRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "_posts"), 0755); err != nil {
		t.Fatalf("failed to create _posts: %v", err)
	}
	return root
}

const expectedDoc = `---
layout: post
title: "Hello World"
date: 2024-03-09 00:00:00
categories: March2024
tags:
  - a
  - b
  - c
author:
    name: Jane Doe
    url: https://example.com/hello
---
line1
line2`

func TestCollectAcceptsDefaults(t *testing.T) {
	s := newSession(t, t.TempDir(), answers(defaultAnswers()...), io.Discard)

	in, err := s.Collect(context.Background())
	if err != nil {
		t.Fatalf("failed to collect: %v", err)
	}

	want := article.Input{
		Published: time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC),
		Title:     "Hello World",
		Slug:      "hello-world",
		Tags:      []string{"a", "b", "c"},
		Author: article.Author{
			Name: "Jane Doe",
			URL:  "https://example.com/hello",
		},
		Delimiter:   "END",
		Description: "line1\nline2",
	}
	if diff := cmp.Diff(want, in); diff != "" {
		t.Errorf("collected input mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectTypedValues(t *testing.T) {
	s := newSession(t, t.TempDir(), answers(
		"2023", "12", "31",
		"  Padded Title  ",
		"My Custom slug",
		"go, testing,",
		"Jane", "@jane", "jdoe", "https://example.com",
		"EOF",
		"first", "end", "EOF",
	), io.Discard)

	in, err := s.Collect(context.Background())
	if err != nil {
		t.Fatalf("failed to collect: %v", err)
	}

	if got := article.DateString(in.Published); got != "2023-12-31 00:00:00" {
		t.Errorf("unexpected date %s", got)
	}
	if in.Title != "Padded Title" {
		t.Errorf("expected trimmed title, got %q", in.Title)
	}
	if in.Slug != "My Custom slug" {
		t.Errorf("expected slug override kept verbatim, got %q", in.Slug)
	}
	if diff := cmp.Diff([]string{"go", " testing", ""}, in.Tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
	if in.Author.Twitter != "@jane" || in.Author.GitHub != "jdoe" {
		t.Errorf("unexpected author %+v", in.Author)
	}
	if in.Description != "first\nend" {
		t.Errorf("expected case-sensitive delimiter match, got %q", in.Description)
	}
}

func TestCollectEmptyDelimiterAndEmptyFirstLine(t *testing.T) {
	s := newSession(t, t.TempDir(), answers(
		"", "", "",
		"Title", "",
		"tag",
		"Jane", "", "", "",
		"",
		"",
	), io.Discard)

	in, err := s.Collect(context.Background())
	if err != nil {
		t.Fatalf("failed to collect: %v", err)
	}
	if in.Description != "" {
		t.Errorf("expected empty description, got %q", in.Description)
	}
}

func TestCollectAuthorDefaultsFromOptions(t *testing.T) {
	var out bytes.Buffer
	s := New(answers(defaultAnswers()...), &out, Options{
		Location: time.UTC,
		Now:      func() time.Time { return fixedNow },
		Author:   article.Author{Twitter: "cfgtwitter"},
	})

	in, err := s.Collect(context.Background())
	if err != nil {
		t.Fatalf("failed to collect: %v", err)
	}
	if in.Author.Twitter != "cfgtwitter" {
		t.Errorf("expected configured twitter default, got %q", in.Author.Twitter)
	}
	if in.Author.Name != "Jane Doe" {
		t.Errorf("expected typed name, got %q", in.Author.Name)
	}
}

func TestCollectRejectsNonNumericDate(t *testing.T) {
	s := newSession(t, t.TempDir(), answers("soon", "", ""), io.Discard)

	if _, err := s.Collect(context.Background()); err == nil {
		t.Fatal("expected error for non-numeric year")
	}
}

func TestCollectInputEndsBeforeDelimiter(t *testing.T) {
	lines := defaultAnswers()
	s := newSession(t, t.TempDir(), answers(lines[:len(lines)-1]...), io.Discard)

	_, err := s.Collect(context.Background())
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestRunWritesArticle(t *testing.T) {
	root := setupRoot(t)
	var out bytes.Buffer
	s := newSession(t, root, answers(defaultAnswers("yes")...), &out)

	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	wantPath := filepath.Join(root, "_posts", "m2403", "2024-03-09-hello-world.md")
	if res.Path != wantPath {
		t.Errorf("expected path %s, got %s", wantPath, res.Path)
	}
	if !res.FolderCreated {
		t.Error("expected month folder to be created")
	}
	if res.Overwritten {
		t.Error("did not expect an overwrite")
	}

	data, err := os.ReadFile(wantPath)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if diff := cmp.Diff(expectedDoc, string(data)); diff != "" {
		t.Errorf("written document mismatch (-want +got):\n%s", diff)
	}

	if !strings.Contains(out.String(), expectedDoc) {
		t.Error("expected preview to contain the rendered document")
	}
	if !strings.Contains(out.String(), wantPath) {
		t.Error("expected preview to show the destination path")
	}
}

func TestRunDeclineLeavesFilesystemUntouched(t *testing.T) {
	for _, answer := range []string{"no", "", "y", "yess"} {
		root := setupRoot(t)
		s := newSession(t, root, answers(defaultAnswers(answer)...), io.Discard)

		_, err := s.Run(context.Background())
		if !errors.Is(err, ErrAborted) {
			t.Fatalf("answer %q: expected ErrAborted, got %v", answer, err)
		}

		entries, err := os.ReadDir(filepath.Join(root, "_posts"))
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 0 {
			t.Errorf("answer %q: expected no folder to be created, found %d entries", answer, len(entries))
		}
	}
}

func TestRunMissingPostsDir(t *testing.T) {
	root := t.TempDir()
	s := newSession(t, root, answers(defaultAnswers("yes")...), io.Discard)

	_, err := s.Run(context.Background())
	if !errors.Is(err, posts.ErrPostsDirMissing) {
		t.Fatalf("expected ErrPostsDirMissing, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "_posts")); !os.IsNotExist(err) {
		t.Error("_posts must not be created")
	}
}

func writeExisting(t *testing.T, root string) string {
	t.Helper()
	folder := filepath.Join(root, "_posts", "m2403")
	if err := os.Mkdir(folder, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(folder, "2024-03-09-hello-world.md")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// A declined overwrite is a hard abort: the existing file keeps its content.
func TestRunOverwriteDeclinedKeepsExistingFile(t *testing.T) {
	root := setupRoot(t)
	path := writeExisting(t, root)
	s := newSession(t, root, answers(defaultAnswers("yes", "no")...), io.Discard)

	_, err := s.Run(context.Background())
	if !errors.Is(err, ErrOverwriteDeclined) {
		t.Fatalf("expected ErrOverwriteDeclined, got %v", err)
	}
	if !errors.Is(err, ErrAborted) {
		t.Error("expected overwrite decline to count as a user abort")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "old" {
		t.Errorf("expected existing file untouched, got %q", data)
	}
}

func TestRunOverwriteAccepted(t *testing.T) {
	root := setupRoot(t)
	path := writeExisting(t, root)
	s := newSession(t, root, answers(defaultAnswers("yes", " YES ")...), io.Discard)

	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !res.Overwritten {
		t.Error("expected overwrite to be reported")
	}
	if res.FolderCreated {
		t.Error("month folder already existed")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != expectedDoc {
		t.Errorf("expected overwritten document, got %q", data)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newSession(t, setupRoot(t), answers(defaultAnswers("yes")...), io.Discard)
	if _, err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
