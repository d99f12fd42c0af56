package resolve

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/poiesic/instanote/core"
	"github.com/poiesic/instanote/page"
)

// pageMediaDir returns the directory holding the media of one page. Pages
// get separate directories so that equal enumeration indexes never collide.
func pageMediaDir(root, pageURL string) string {
	return filepath.Join(root, fmt.Sprintf("%016x", uint64(core.IDFromContent(pageURL))))
}

// mediaExtension returns the lower-cased extension of the resource path if
// it is in allowed, otherwise fallback.
func mediaExtension(resource string, allowed []string, fallback string) string {
	u, err := url.Parse(resource)
	if err != nil {
		return fallback
	}
	ext := strings.ToLower(path.Ext(u.Path))
	if !slices.Contains(allowed, ext) {
		return fallback
	}
	return ext
}

// downloadAll saves every resource into dir as <prefix>_<tag index><ext> and
// returns the paths of the files that were saved, in input order. Resources
// that fail to download are skipped.
func (r *Resolver) downloadAll(ctx context.Context, resources []page.Resource, dir, prefix string, allowed []string, fallback string) []string {
	paths := make([]string, 0, len(resources))
	for _, resource := range resources {
		name := fmt.Sprintf("%s_%d%s", prefix, resource.Index, mediaExtension(resource.URL, allowed, fallback))
		dest := filepath.Join(dir, name)
		if err := r.fetcher.Download(ctx, resource.URL, dest); err != nil {
			r.logger.Warn("skipping media", "url", resource.URL, "error", err)
			continue
		}
		paths = append(paths, dest)
	}
	return paths
}
