// Package walker enumerates scan candidates under a root directory.
// Traversal is pre-order; excluded subtrees are pruned before descending
// so huge ignored trees like node_modules are never entered. Symlinked
// directories are never followed, which guarantees termination on cyclic
// trees. Only regular files are yielded.
package walker

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/keyhound/keyhound/internal/classify"
	"github.com/keyhound/keyhound/internal/ignore"
)

// Walk traverses root and invokes handle with the root-relative path of
// every regular file that survives directory pruning and the ignore
// matcher. Unreadable directory entries are logged and skipped; they never
// abort the traversal.
func Walk(ctx context.Context, root string, ign ignore.Matcher, handle func(rel string)) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			log.Warn().Err(err).Str("path", p).Msg("unreadable entry skipped")
			return nil
		}
		rel, rerr := filepath.Rel(root, p)
		if rerr != nil || rel == "." {
			return nil
		}
		if d.IsDir() {
			if classify.SkipDir(d.Name()) {
				log.Debug().Str("dir", rel).Msg("pruned directory")
				return filepath.SkipDir
			}
			return nil
		}
		// WalkDir does not follow symlinks; anything not a regular file
		// (symlink, fifo, device) is dropped here.
		if !d.Type().IsRegular() {
			return nil
		}
		if ign.Match(rel) {
			log.Debug().Str("path", rel).Msg("ignored by ignore file")
			return nil
		}
		handle(rel)
		return nil
	})
}
