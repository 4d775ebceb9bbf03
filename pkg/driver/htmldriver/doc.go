// Package htmldriver implements the driver contract over static HTML
// documents parsed in memory. No browser process is involved: pages are
// registered as raw HTML under their URLs, navigation swaps the parsed
// document, and interactions mutate element attributes so their effects
// can be observed through reads.
//
//	drv := htmldriver.New(
//	    htmldriver.WithPage("https://example.com/login", loginHTML),
//	)
//	sess, err := drv.Launch(ctx, driver.Chromium, driver.LaunchOptions{})
//
// The driver is the offline counterpart to the Playwright binding. It runs
// chains against canned documents in microseconds, which makes it the
// backend of choice for tests and for dry-running a flow before pointing
// it at a live site.
//
// Interactions leave these marks on the document:
//
//   - Click sets data-clicked and increments data-click-count; clicking an
//     anchor whose href names a registered page navigates to it
//   - Fill sets the value attribute
//   - Press sets data-last-key
//
// Because the documents are static, WaitVisible never actually waits: an
// element either is in the parsed tree or it never will be. Elements
// carrying the hidden attribute (or inside an ancestor that does) count as
// not visible.
package htmldriver
