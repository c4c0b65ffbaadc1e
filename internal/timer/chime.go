package timer

import (
	"encoding/binary"
	"math"
)

// Crystal-ping chime: three sine partials over the base frequency with
// staggered onsets and exponential decay.
const (
	chimeSampleRate = 44100
	chimeBaseFreq   = 2637.0
	chimeAttack     = 0.001
	chimeFloor      = 0.0001
)

type chimePartial struct {
	freq   float64
	volume float64
	decay  float64
	onset  float64
}

var chimePartials = []chimePartial{
	{freq: chimeBaseFreq, volume: 0.12, decay: 0.4, onset: 0},
	{freq: chimeBaseFreq * 1.5, volume: 0.04, decay: 0.3, onset: 0.02},
	{freq: chimeBaseFreq * 2.618, volume: 0.02, decay: 0.2, onset: 0.04},
}

// ChimeWAV synthesizes the start-confirmation chime as a 16-bit mono WAV.
func ChimeWAV() []byte {
	var total float64
	for _, p := range chimePartials {
		if end := p.onset + p.decay + 0.1; end > total {
			total = end
		}
	}

	sampleCount := int(total * chimeSampleRate)
	samples := make([]float64, sampleCount)
	for _, p := range chimePartials {
		mixPartial(samples, p)
	}

	return encodeWAV(samples)
}

func mixPartial(samples []float64, p chimePartial) {
	start := int(p.onset * chimeSampleRate)
	end := int((p.onset + p.decay) * chimeSampleRate)
	if end > len(samples) {
		end = len(samples)
	}
	attack := chimeAttack * chimeSampleRate
	attackSamples := int(attack)
	if attackSamples < 1 {
		attackSamples = 1
	}
	// gain ramps linearly to volume over the attack, then decays
	// exponentially to the floor at the end of the partial
	decayRate := math.Log(chimeFloor/p.volume) / (p.decay - chimeAttack)
	for i := start; i < end; i++ {
		t := float64(i-start) / chimeSampleRate
		var gain float64
		if i-start < attackSamples {
			gain = p.volume * float64(i-start+1) / float64(attackSamples)
		} else {
			gain = p.volume * math.Exp(decayRate*(t-chimeAttack))
		}
		samples[i] += gain * math.Sin(2*math.Pi*p.freq*t)
	}
}

func encodeWAV(samples []float64) []byte {
	dataLen := len(samples) * 2
	buf := make([]byte, 44+dataLen)

	copy(buf[0:4], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:8], uint32(36+dataLen))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	binary.LittleEndian.PutUint32(buf[16:20], 16)
	binary.LittleEndian.PutUint16(buf[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(buf[22:24], 1) // mono
	binary.LittleEndian.PutUint32(buf[24:28], chimeSampleRate)
	binary.LittleEndian.PutUint32(buf[28:32], chimeSampleRate*2)
	binary.LittleEndian.PutUint16(buf[32:34], 2)
	binary.LittleEndian.PutUint16(buf[34:36], 16)
	copy(buf[36:40], "data")
	binary.LittleEndian.PutUint32(buf[40:44], uint32(dataLen))

	for i, sample := range samples {
		if sample > 1 {
			sample = 1
		} else if sample < -1 {
			sample = -1
		}
		binary.LittleEndian.PutUint16(buf[44+i*2:], uint16(int16(sample*32767)))
	}
	return buf
}
