package media

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		expected Category
		ok       bool
	}{
		{"lowercase jpg", "photo.jpg", Image, true},
		{"uppercase JPG", "Photo.JPG", Image, true},
		{"heic", "IMG_0001.HEIC", Image, true},
		{"gif", "diagram.gif", Image, true},
		{"mp4", "lab.mp4", Video, true},
		{"webm", "demo.WebM", Video, true},
		{"mkv", "clip.mkv", Video, true},
		{"wav", "audio-101500.wav", Audio, true},
		{"m4a", "memo.m4a", Audio, true},
		{"ogg", "memo.ogg", Audio, true},
		{"unknown extension", "report.pdf", "", false},
		{"no extension", "README", "", false},
		{"dotfile", ".DS_Store", "", false},
		{"text sidecar", "notes.txt", "", false},
		{"nested path", "/data/chem/2024-01-15/093000-abc/photo.png", Image, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.file)
			if ok != tt.ok {
				t.Fatalf("Classify(%q) ok = %v, expected %v", tt.file, ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("Classify(%q) = %q, expected %q", tt.file, got, tt.expected)
			}
		})
	}
}

func TestClassify_CaseInsensitiveIdempotent(t *testing.T) {
	a, okA := Classify("Photo.JPG")
	b, okB := Classify("photo.jpg")
	if !okA || !okB {
		t.Fatalf("expected both names to classify, got %v and %v", okA, okB)
	}
	if a != b {
		t.Errorf("Classify mismatch: %q vs %q", a, b)
	}
}

func TestSidecar(t *testing.T) {
	if k, ok := Sidecar("notes.txt"); !ok || k != ManualNotes {
		t.Errorf("Sidecar(notes.txt) = %v, %v", k, ok)
	}
	if k, ok := Sidecar("voice_transcript.txt"); !ok || k != Transcript {
		t.Errorf("Sidecar(voice_transcript.txt) = %v, %v", k, ok)
	}
	if _, ok := Sidecar("Notes.TXT"); ok {
		t.Error("sidecar names are matched exactly")
	}
	if _, ok := Sidecar("other.txt"); ok {
		t.Error("other.txt should not be a sidecar")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		file     string
		expected Kind
	}{
		{"notes.txt", KindSidecar},
		{"voice_transcript.txt", KindSidecar},
		{"metadata.json", KindIgnored},
		{"093000-00-photo.jpg", KindMedia},
		{"audio-093000.wav", KindMedia},
		{"scratch.tmp", KindIgnored},
		{"Thumbs.db", KindIgnored},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			if got := KindOf(tt.file); got != tt.expected {
				t.Errorf("KindOf(%q) = %d, expected %d", tt.file, got, tt.expected)
			}
		})
	}
}

func TestCategories_Order(t *testing.T) {
	got := Categories()
	expected := []Category{Image, Video, Audio}
	if len(got) != len(expected) {
		t.Fatalf("Categories() length = %d, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Categories()[%d] = %q, expected %q", i, got[i], expected[i])
		}
	}
}

func TestCategory_Count(t *testing.T) {
	tests := []struct {
		c        Category
		n        int
		expected string
	}{
		{Image, 1, "1 image"},
		{Image, 2, "2 images"},
		{Video, 3, "3 videos"},
		{Audio, 1, "1 audio"},
	}
	for _, tt := range tests {
		if got := tt.c.Count(tt.n); got != tt.expected {
			t.Errorf("%q.Count(%d) = %q, expected %q", tt.c, tt.n, got, tt.expected)
		}
	}
}

func TestCategory_Title(t *testing.T) {
	if got := Video.Title(); got != "Video" {
		t.Errorf("Video.Title() = %q", got)
	}
	if got := Category("").Title(); got != "" {
		t.Errorf("empty Title() = %q", got)
	}
}
