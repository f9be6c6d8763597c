package audio

import (
	"math"
)

// Generate renders a sound effect as stereo float32 little-endian samples.
func Generate(sound Sound) []byte {
	switch sound {
	case SoundTurbo:
		return genTurbo()
	case SoundCheer:
		return genCheer()
	case SoundPop:
		return genPop()
	case SoundCrash:
		return genCrash()
	}
	return nil
}

// genTurbo is a rising engine whine with a breathy top.
func genTurbo() []byte {
	const dur = 0.6
	n := int(SampleRate * dur)
	buf := makeBuf(n)
	seed := uint64(0x7a11)
	phase := 0.0
	for i := range n {
		p := float64(i) / float64(n)
		freq := 90 + 420*p*p
		phase += freq / SampleRate
		saw := 2*(phase-math.Floor(phase)) - 1
		hiss := lcg(&seed) * 0.25 * p
		env := adsr(p, 0.05, 0.2, 0.8, 0.3)
		putStereoF32(buf, i, softSat((saw*0.6+hiss)*env*0.7))
	}
	return buf
}

// genCheer is a crowd roar: band-limited noise swelling in waves.
func genCheer() []byte {
	const dur = 2.0
	n := int(SampleRate * dur)
	buf := makeBuf(n)
	seed := uint64(0xc4ee5)
	var low, band float64
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		noise := lcg(&seed)
		low += 0.08 * (noise - low)
		band += 0.3 * (low - band)
		swell := 0.6 + 0.4*math.Sin(2*math.Pi*1.5*t)
		whistle := 0.15 * math.Sin(2*math.Pi*(1800+200*math.Sin(2*math.Pi*3*t))*t) * (1 - p)
		env := adsr(p, 0.1, 0.2, 0.85, 0.35)
		putStereoF32(buf, i, softSat((band*3*swell+whistle)*env))
	}
	return buf
}

// genPop is a short bright blip.
func genPop() []byte {
	const dur = 0.09
	n := int(SampleRate * dur)
	buf := makeBuf(n)
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		freq := 880 - 400*p
		putStereoF32(buf, i, fm(t, freq, 2, 1.5*(1-p))*math.Exp(-6*p)*0.6)
	}
	return buf
}

// genCrash is a decaying noise burst over a low thud.
func genCrash() []byte {
	const dur = 0.8
	n := int(SampleRate * dur)
	buf := makeBuf(n)
	seed := uint64(0xc2a54)
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		thud := math.Sin(2*math.Pi*(60-30*p)*t) * math.Exp(-8*p)
		noise := lcg(&seed) * math.Exp(-4*p)
		putStereoF32(buf, i, softSat((thud*0.8+noise*0.7)*0.9))
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := range ChannelCount {
		off := i*8 + c*4
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
}

// softSat applies gentle saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*4*ChannelCount) }
