// SPDX-License-Identifier: EPL-2.0

package mix

// MaxVolumeLevel is the symmetric ceiling applied after every additive
// accumulation into a destination buffer.
const MaxVolumeLevel float32 = 16777216.0

// Voice is a node in the mix graph that can receive audio from sends:
// a submix or the master voice. Source voices are not valid targets.
type Voice interface {
	// inputBuffer is the accumulator sends write into for the current
	// block.
	inputBuffer() []float32
	inputChannels() int
	inputSampleRate() int
}

// Send is a directed, gain-weighted edge from one voice to another.
// All sends of one voice must target the same input sample rate: the
// voice produces a single stream at that rate and fans it out.
//
// Coefficients is a [destination channel][source channel] matrix
// flattened row-major: Coefficients[co*srcChannels+ci] scales source
// channel ci into destination channel co. A nil matrix selects
// DefaultCoefficients for the channel pair.
type Send struct {
	Target       Voice
	Coefficients []float32
}

// properties shared by every voice variant.
type voiceProperties struct {
	volume        float32
	channelVolume []float32
	sends         []Send
}

func newVoiceProperties(channels int) voiceProperties {
	cv := make([]float32, channels)
	for i := range cv {
		cv[i] = 1.0
	}
	return voiceProperties{volume: 1.0, channelVolume: cv}
}

// Volume returns the voice's overall gain.
func (p *voiceProperties) Volume() float32 { return p.volume }

// SetVolume sets the voice's overall gain. It takes effect on the next
// block.
func (p *voiceProperties) SetVolume(volume float32) {
	p.volume = volume
}

// SetChannelVolumes sets the per-channel gains. volumes must have one
// entry per voice channel.
func (p *voiceProperties) SetChannelVolumes(volumes []float32) error {
	if len(volumes) != len(p.channelVolume) {
		return ErrChannelVolumeCount
	}
	copy(p.channelVolume, volumes)
	return nil
}

func (p *voiceProperties) setSends(sends []Send, srcChannels int) error {
	resolved := make([]Send, len(sends))
	for i, s := range sends {
		if s.Target.inputSampleRate() != sends[0].Target.inputSampleRate() {
			return ErrSendRateMismatch
		}
		want := s.Target.inputChannels() * srcChannels
		switch {
		case s.Coefficients == nil:
			s.Coefficients = DefaultCoefficients(srcChannels, s.Target.inputChannels())
		case len(s.Coefficients) != want:
			return ErrCoefficientCount
		}
		resolved[i] = s
	}
	p.sends = resolved
	return nil
}

// MasterVoice is the terminal node of the graph. It does not own an
// accumulator: each engine update binds it to the caller-supplied
// output buffer for exactly one block.
type MasterVoice struct {
	voiceProperties
	channels   int
	sampleRate int
	output     []float32
}

// Channels returns the master channel count.
func (m *MasterVoice) Channels() int { return m.channels }

// SampleRate returns the master sample rate in Hz.
func (m *MasterVoice) SampleRate() int { return m.sampleRate }

func (m *MasterVoice) inputBuffer() []float32 { return m.output }
func (m *MasterVoice) inputChannels() int     { return m.channels }
func (m *MasterVoice) inputSampleRate() int   { return m.sampleRate }
