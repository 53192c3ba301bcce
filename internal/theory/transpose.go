package theory

// Interval is a number of semitones in [0,11]
type Interval int

// ReduceInterval folds any signed semitone count into [0,11]
func ReduceInterval(semitones int) Interval {
	return Interval(wrap(semitones))
}

// TransposeRoot shifts a single note name by interval semitones.
// The result is always sharp-spelled; unknown names are returned untouched.
func TransposeRoot(note string, interval int) string {
	pc := PitchClassOf(note)
	if pc == NoPitch {
		return note
	}
	return pc.Add(interval).Name()
}

// TransposeChord shifts the root and slash bass of a chord symbol by the same
// interval and keeps the quality verbatim. An interval that reduces to 0 returns
// the symbol exactly as given, and so does text without a recognizable root.
func TransposeChord(symbol string, interval int) string {
	shift := ReduceInterval(interval)
	if shift == 0 {
		return symbol
	}

	chord := Parse(symbol)
	if !chord.Recognized() {
		return symbol
	}

	chord.Root = TransposeRoot(chord.Root, int(shift))
	if chord.HasBass() {
		chord.Bass = TransposeRoot(chord.Bass, int(shift))
	}
	return chord.String()
}

// ComputeInterval returns the upward distance from one key to another.
// Either key being unrecognized yields 0 so callers no-op.
func ComputeInterval(fromKey, toKey string) Interval {
	from := PitchClassOf(fromKey)
	to := PitchClassOf(toKey)
	if from == NoPitch || to == NoPitch {
		return 0
	}
	return ReduceInterval(int(to) - int(from))
}
