package resolve

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/poiesic/instanote/core"
)

// Kind identifies how an input item is turned into text.
type Kind int

const (
	// KindText is a .txt upload that may carry embedded URLs.
	KindText Kind = iota
	// KindDocument is any other text upload, taken verbatim.
	KindDocument
	// KindImage is an uploaded image, read with OCR.
	KindImage
	// KindAudio is an uploaded audio clip, transcribed with ASR.
	KindAudio
	// KindURL is a URL pasted by the user.
	KindURL
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindDocument:
		return "document"
	case KindImage:
		return "image"
	case KindAudio:
		return "audio"
	case KindURL:
		return "url"
	default:
		return "unknown"
	}
}

var (
	imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp"}
	audioExtensions = []string{".mp3", ".wav", ".ogg", ".aac", ".flac", ".m4a"}
)

// KindForFile classifies an upload by its file name extension.
func KindForFile(name string) Kind {
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case ext == ".txt":
		return KindText
	case slices.Contains(imageExtensions, ext):
		return KindImage
	case slices.Contains(audioExtensions, ext):
		return KindAudio
	default:
		return KindDocument
	}
}

// Item is one input to the resolver: an uploaded file or a pasted URL.
type Item struct {
	Kind Kind
	// Name is the file name of an upload.
	Name string
	// Data holds the raw bytes of an upload.
	Data []byte
	// URL is set for KindURL items.
	URL string
}

// FileItem builds an Item for an uploaded file, classified by KindForFile.
func FileItem(name string, data []byte) Item {
	return Item{Kind: KindForFile(name), Name: name, Data: data}
}

// URLItem builds an Item for a pasted URL.
func URLItem(url string) Item {
	return Item{Kind: KindURL, URL: url}
}

// Source returns the identifier used to report on the item.
func (i Item) Source() string {
	if i.Kind == KindURL {
		return i.URL
	}
	return i.Name
}

// Resolved is the raw text body produced for one item or sub-item,
// together with its provenance.
type Resolved struct {
	Type   core.NoteType
	Source string
	URL    string
	Title  string
	Text   string
	Media  []string
}

// Failure records why one item or sub-item produced no text.
type Failure struct {
	Source string
	Err    error
}

func (f Failure) Error() string {
	return f.Source + ": " + f.Err.Error()
}

func (f Failure) Unwrap() error {
	return f.Err
}
