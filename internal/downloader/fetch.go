package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/OkhDev/media-to-text/internal/app/util/files"
)

// ErrNoMedia reports a share page without OpenGraph media tags.
var ErrNoMedia = errors.New("page exposes no og:audio or og:video media")

// MediaRef is a direct media URL discovered on a share page.
type MediaRef struct {
	URL   string
	Title string
	Ext   string
}

// Fetcher scrapes share pages for OpenGraph media tags and downloads the
// referenced file into the media directory.
type Fetcher struct {
	client *http.Client
	logger *zap.Logger
}

func NewFetcher(client *http.Client, logger *zap.Logger) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client, logger: logger}
}

// Resolve turns a user-supplied URL into a downloadable media reference. A
// URL that already points at a media file is returned as is, named after
// its path. Anything else is fetched as a share page and the first og:audio
// reference is extracted, falling back to og:video, with og:title naming
// the downloaded file.
func (f *Fetcher) Resolve(ctx context.Context, pageURL string) (MediaRef, error) {
	if ext := mediaExtension(pageURL); ext != "" {
		return MediaRef{URL: pageURL, Title: titleFromURL(pageURL), Ext: ext}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return MediaRef{}, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return MediaRef{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return MediaRef{}, fmt.Errorf("fetch %s: unexpected status %s", pageURL, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return MediaRef{}, err
	}

	mediaURL, _ := doc.Find(`meta[property="og:audio"]`).First().Attr("content")
	if mediaURL == "" {
		mediaURL, _ = doc.Find(`meta[property="og:video"]`).First().Attr("content")
	}
	if mediaURL == "" {
		return MediaRef{}, ErrNoMedia
	}

	title, _ := doc.Find(`meta[property="og:title"]`).First().Attr("content")
	if title == "" {
		title = "download"
	}

	ext := mediaExtension(mediaURL)
	if ext == "" {
		return MediaRef{}, fmt.Errorf("cannot determine media type of %s", mediaURL)
	}

	return MediaRef{URL: mediaURL, Title: title, Ext: ext}, nil
}

// Download saves the referenced media into dir, named from the page title.
// An existing local file with the remote's size is kept as is.
func (f *Fetcher) Download(ctx context.Context, ref MediaRef, dir string) (string, error) {
	if err := files.EnsureDir(dir); err != nil {
		return "", err
	}
	target := filepath.Join(dir, validPath(ref.Title)+ref.Ext)

	if size, err := f.remoteSize(ctx, ref.URL); err == nil {
		if info, statErr := os.Stat(target); statErr == nil && info.Size() == size {
			f.logger.Info("local file matches remote size, skipping download",
				zap.String("path", target))
			return target, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref.URL, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: unexpected status %s", ref.URL, resp.Status)
	}

	out, err := os.Create(target)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(target)
		return "", fmt.Errorf("download %s: %w", ref.URL, err)
	}
	if err := out.Close(); err != nil {
		return "", err
	}

	f.logger.Info("downloaded media",
		zap.String("title", ref.Title),
		zap.String("path", target))
	return target, nil
}

func (f *Fetcher) remoteSize(ctx context.Context, mediaURL string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, mediaURL, nil)
	if err != nil {
		return 0, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return strconv.ParseInt(resp.Header.Get("Content-Length"), 10, 64)
}

func validPath(path string) string {
	return strings.ReplaceAll(path, "/", "-")
}

// titleFromURL names a direct download after the last URL path segment,
// without the extension.
func titleFromURL(mediaURL string) string {
	trimmed := mediaURL
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	if u, err := url.Parse(trimmed); err == nil && u.Path != "" {
		trimmed = u.Path
	}
	base := path.Base(trimmed)
	title := strings.TrimSuffix(base, path.Ext(base))
	if title == "" || title == "." || title == "/" {
		return "download"
	}
	return title
}

// mediaExtension returns the known media extension of the URL path, with
// any query or fragment ignored.
func mediaExtension(mediaURL string) string {
	if i := strings.IndexAny(mediaURL, "?#"); i >= 0 {
		mediaURL = mediaURL[:i]
	}
	supported := []string{".mp3", ".m4a", ".wav", ".ogg", ".flac", ".aac", ".mp4", ".mov", ".webm", ".mkv"}
	lower := strings.ToLower(mediaURL)
	for _, ext := range supported {
		if strings.HasSuffix(lower, ext) {
			return ext
		}
	}
	return ""
}
