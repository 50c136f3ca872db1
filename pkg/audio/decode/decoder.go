// ABOUTME: Decoder interface definition
// ABOUTME: Common interface for turning encoded bytes into PCM buffers
package decode

import "github.com/Resonate-Protocol/resonate-pcm/pkg/audio"

// Decoder decodes audio bytes to an interleaved PCM buffer
type Decoder interface {
	// Decode converts encoded audio data to PCM samples
	Decode(data []byte) (audio.Buffer, error)

	// Close releases decoder resources
	Close() error
}
