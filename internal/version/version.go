// ABOUTME: Version information for pcmconv
// ABOUTME: Product name, manufacturer and release version
package version

const (
	// Version is the release version
	Version = "0.1.0"

	// Product is the product name reported by the CLI
	Product = "pcmconv"

	// Manufacturer is the project that publishes the tool
	Manufacturer = "Resonate Protocol"
)

// String renders the one-line version banner
func String() string {
	return Product + " " + Version + " (" + Manufacturer + ")"
}
