package conversation

// DeriveVoiceParameters maps retrieved context to voice parameters for
// synthesis. It is pure and never fails; absence of signal is not an error.
//
// This is a deliberate stub: a fuller implementation would extract age, gender,
// or accent cues from the context, but today every turn resolves to the
// configured default regardless of context content.
func DeriveVoiceParameters(contextText string, fallback VoiceParameters) VoiceParameters {
	_ = contextText
	return fallback
}
