// Package gitrepo fetches a remote repository into a temporary directory
// so the scanner can treat it like any local tree.
package gitrepo

import (
	"context"
	"fmt"
	"os"

	git "github.com/go-git/go-git/v5"
	"github.com/rs/zerolog/log"
)

// Clone performs a shallow clone of url into a fresh temporary directory
// and returns the directory plus a cleanup function. The caller must run
// cleanup after the scan regardless of its outcome. A clone failure is
// fatal for the run; there is no directory to scan.
func Clone(ctx context.Context, url string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "keyhound-repo-*")
	if err != nil {
		return "", nil, fmt.Errorf("temp dir: %w", err)
	}
	cleanup := func() {
		if err := os.RemoveAll(dir); err != nil {
			log.Warn().Err(err).Str("dir", dir).Msg("failed to remove clone directory")
		}
	}

	log.Info().Str("url", url).Str("dir", dir).Msg("cloning repository")
	_, err = git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:          url,
		Depth:        1,
		SingleBranch: true,
	})
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("clone %s: %w", url, err)
	}
	return dir, cleanup, nil
}
