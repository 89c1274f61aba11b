package component

import "github.com/lixenwraith/speaki-box/core"

// VoiceComponent tracks the in-flight voice that holds the mouth open
type VoiceComponent struct {
	Handle core.VoiceHandle
	Active bool
}
