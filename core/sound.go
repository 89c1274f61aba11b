package core

// VoiceHandle identifies one playing voice instance, zero means none
type VoiceHandle uint64

// VoiceID indexes the voice bank
type VoiceID int
