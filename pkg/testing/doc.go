// Package testing provides a harness for testing builder procedures.
//
// # Quick Start
//
// Create a tester, pump a page, and make assertions:
//
//	func TestMyPage(t *testing.T) {
//	    tester := uitest.NewTesterWithT(t)
//	    tester.Pump(func(b *ui.Builder) {
//	        b.Button(ui.At(0, 0, .5, .1), "Submit", submit)
//	    })
//
//	    // Simulate input
//	    tester.Tap(uitest.ByContent("Submit"))
//
//	    // Find nodes
//	    if !tester.Find(uitest.ByText("Submitted")).Exists() {
//	        t.Error("expected 'Submitted' text")
//	    }
//	}
//
// The tester drives a real engine.Engine presenting to a raster surface,
// so every Step ticks the interaction controller and draws a frame.
//
// # Snapshot Testing
//
// Capture and compare node tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/my_page.snapshot.json")
//
// Update snapshots with:
//
//	GGUI_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import uitest "github.com/go-drift/ggui/pkg/testing"
package testing
