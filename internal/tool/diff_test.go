package tool

import "testing"

func TestBuildDiffMetadata_SingleLineChange(t *testing.T) {
	before := "go 1.25\n"
	after := "go 1.24\n"

	diffText, additions, deletions := buildDiffMetadata("go.mod", before, after, "")

	if additions != 1 {
		t.Errorf("expected 1 addition, got %d", additions)
	}
	if deletions != 1 {
		t.Errorf("expected 1 deletion, got %d", deletions)
	}
	if diffText == "" {
		t.Error("expected non-empty diff text")
	}
}

func TestBuildDiffMetadata_NoChanges(t *testing.T) {
	content := "same content\non multiple lines\n"

	diffText, additions, deletions := buildDiffMetadata("file.txt", content, content, "")

	if additions != 0 || deletions != 0 {
		t.Errorf("expected no changes, got +%d/-%d", additions, deletions)
	}
	if diffText != "" {
		t.Errorf("expected empty diff text for identical content, got %q", diffText)
	}
}

func TestBuildDiffMetadata_NewFile(t *testing.T) {
	diffText, additions, deletions := buildDiffMetadata("new.txt", "", "new content\nwith two lines\n", "")

	if additions != 2 {
		t.Errorf("expected 2 additions, got %d", additions)
	}
	if deletions != 0 {
		t.Errorf("expected 0 deletions, got %d", deletions)
	}
	if diffText == "" {
		t.Error("expected non-empty diff text")
	}
}

func TestBuildDiffMetadata_DeletedFile(t *testing.T) {
	diffText, additions, deletions := buildDiffMetadata("old.txt", "content to delete\nand this too\n", "", "")

	if additions != 0 {
		t.Errorf("expected 0 additions, got %d", additions)
	}
	if deletions != 2 {
		t.Errorf("expected 2 deletions, got %d", deletions)
	}
	if diffText == "" {
		t.Error("expected non-empty diff text")
	}
}

func TestBuildDiffMetadata_HeaderWithRelativePath(t *testing.T) {
	diffText, _, _ := buildDiffMetadata("/repo/src/main.go", "a\n", "b\n", "/repo")

	if diffText == "" {
		t.Fatal("expected non-empty diff text")
	}
	if !containsAll(diffText, "--- src/main.go", "+++ src/main.go") {
		t.Errorf("expected relative-path headers in diff text, got %q", diffText)
	}
}

func containsAll(s string, subs ...string) bool {
	for _, sub := range subs {
		if !contains(s, sub) {
			return false
		}
	}
	return true
}

func contains(s, sub string) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return true
		}
	}
	return false
}
