// SPDX-License-Identifier: EPL-2.0

// Package quiet temporarily silences the process's standard error
// stream. Some native audio libraries write initialization noise
// straight to file descriptor 2, where it corrupts the terminal of
// whoever embeds us; swapping os.Stderr alone would not stop them, so
// the redirection happens at the descriptor level.
package quiet

// Stderr runs fn with standard error redirected to the null device and
// restores the original stream before returning, on every path. fn
// always runs, even when the redirection itself fails; the returned
// error reports redirection or restore problems only.
func Stderr(fn func()) (err error) {
	restore, rerr := redirect()
	if rerr != nil {
		fn()
		return rerr
	}

	defer func() {
		err = restore()
	}()

	fn()

	return nil
}
