// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package iso639 embeds a sample of the ISO 639-3 code tables so the service
// can start without an external dataset.
//
// The files keep the layout published by the registration authority
// (tab-delimited, header row, CRLF line endings). Point DATASET_DIR at a full
// download to serve the complete registry.
package iso639

import "embed"

//go:embed *.tab
var FS embed.FS
