// ABOUTME: Channel remapping package
// ABOUTME: Changes the channel count of interleaved PCM frame by frame
// Package remix changes the number of channels of interleaved PCM.
//
// Frames are kept intact and in order; only the channels inside each frame
// change. No mixing is done: channels are copied, replayed or dropped.
//
// Example:
//
//	stereo := remix.Channels(mono, 1, 2)
//	quad := remix.Channels(stereo, 2, 4) // [l, r, l, r] per frame
package remix
