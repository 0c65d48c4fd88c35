package mht

import "github.com/arfken-labs/mht/murty"

// ErrCostRegression re-exports murty.ErrCostRegression under the core's own
// name (§7.iii: "the core must detect it"). A host driving Scan checks
// errors.Is(err, mht.ErrCostRegression) without needing to import murty
// itself for the one internal-consistency failure that can escape a scan.
var ErrCostRegression = murty.ErrCostRegression
