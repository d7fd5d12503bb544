// Package extract pulls numeric results out of the free-form text lichem
// writes to its capture file.
//
// Two kinds of result are recognised:
//
//   - Labelled scalars, such as "QM energy:" or "Opt. step: 2", read from
//     a fixed whitespace-separated field of the matching line.
//   - Frequency lists, read from the block between "Frequencies:" and the
//     "Usage Statistics" banner.
//
// Every extraction yields an [Outcome] that says whether the value was
// found, whether the label was missing, or whether the field failed to
// parse. A missing or malformed value is a crash from the caller's point of
// view, but the distinction is kept for logging.
package extract
