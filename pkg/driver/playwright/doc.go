// Package playwright binds the driver contract to real browsers through
// the Playwright driver process. Chromium, Firefox and WebKit sessions are
// supported, each owning an isolated browser context and page.
//
//	if err := playwright.Install(); err != nil { ... }
//	drv, err := playwright.New()
//	defer drv.Close()
//	sess, err := drv.Launch(ctx, driver.Chromium, driver.LaunchOptions{Headless: true})
//
// Install downloads the driver and browser bundles on first use; it is a
// no-op when they are already present. The Playwright process writes
// nothing to the caller's stdio.
package playwright
