// ABOUTME: Encoder interface definition
// ABOUTME: Common interface for turning PCM buffers into bytes
package encode

import "github.com/Resonate-Protocol/resonate-pcm/pkg/audio"

// Encoder encodes interleaved PCM buffers to bytes
type Encoder interface {
	// Encode converts PCM samples to encoded audio data
	Encode(buf audio.Buffer) ([]byte, error)

	// Close releases encoder resources
	Close() error
}
