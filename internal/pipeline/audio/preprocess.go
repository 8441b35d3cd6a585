// Package audio analyzes and conditions raw PCM windows before they are
// sent for transcription. Samples are little-endian float32.
package audio

import (
	"encoding/binary"
	"math"
)

// Processor applies silence detection and level normalization.
type Processor struct {
	// SilenceThreshold is the mean absolute amplitude below which a
	// window is classified as silence.
	SilenceThreshold float64
	// TargetPeak is the peak amplitude quiet audio is boosted toward.
	TargetPeak float64
	// BoostBelow disables normalization for audio already peaking at or
	// above this level.
	BoostBelow float64
}

// Process analyzes one window. It returns the (possibly normalized)
// PCM bytes and whether the window is silence. Silent windows are
// returned unmodified.
func (p *Processor) Process(data []byte) ([]byte, bool) {
	samples := Decode(data)
	if len(samples) == 0 {
		return data, true
	}

	if MeanAbs(samples) < p.SilenceThreshold {
		return data, true
	}

	peak := Peak(samples)
	if peak > 0 && peak < p.BoostBelow {
		gain := p.TargetPeak / peak
		for i := range samples {
			samples[i] = float32(float64(samples[i]) * gain)
		}
		return Encode(samples), false
	}

	return data, false
}

// Decode interprets data as little-endian float32 samples. Trailing
// bytes that do not form a whole sample are ignored.
func Decode(data []byte) []float32 {
	n := len(data) / bytesPerSample
	samples := make([]float32, n)
	for i := 0; i < n; i++ {
		bits := binary.LittleEndian.Uint32(data[i*bytesPerSample:])
		samples[i] = math.Float32frombits(bits)
	}
	return samples
}

// Encode serializes samples as little-endian float32 bytes.
func Encode(samples []float32) []byte {
	data := make([]byte, len(samples)*bytesPerSample)
	for i, s := range samples {
		binary.LittleEndian.PutUint32(data[i*bytesPerSample:], math.Float32bits(s))
	}
	return data
}

// MeanAbs returns the mean absolute amplitude of samples.
func MeanAbs(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += math.Abs(float64(s))
	}
	return sum / float64(len(samples))
}

// Peak returns the largest absolute amplitude in samples.
func Peak(samples []float32) float64 {
	var peak float64
	for _, s := range samples {
		if a := math.Abs(float64(s)); a > peak {
			peak = a
		}
	}
	return peak
}
