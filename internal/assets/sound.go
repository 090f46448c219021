package assets

import (
	"encoding/binary"
	"log"
	"math"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/utils"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Идентификаторы звуков
const (
	SoundLaser = "laser"
	SoundDeath = "death"
)

// ToneSpec описывает синтезируемый звук.
type ToneSpec struct {
	Frequency float64 // Гц в начале звука
	Sweep     float64 // Во сколько раз частота изменится к концу
	Length    float64 // секунды
	Noise     float64 // доля шума в [0, 1]
}

// SoundBank синтезирует звуки при создании и проигрывает их по событиям.
type SoundBank struct {
	ctx     *audio.Context
	pcm     map[string][]byte
	playing []*audio.Player
}

// NewSoundBank создает банк звуков. Контекст ebiten может быть только один,
// поэтому используется уже существующий, если он есть.
func NewSoundBank() *SoundBank {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(config.SampleRate)
	}
	return &SoundBank{
		ctx: ctx,
		pcm: map[string][]byte{
			SoundLaser: SynthesizeTone(ToneSpec{Frequency: config.LaserToneHz, Sweep: 0.5, Length: config.LaserToneLength}, config.SampleRate),
			SoundDeath: SynthesizeTone(ToneSpec{Frequency: config.DeathToneHz, Sweep: 0.4, Length: config.DeathToneLength, Noise: 0.6}, config.SampleRate),
		},
	}
}

// Play проигрывает звук с громкостью volume в [0, 1].
func (b *SoundBank) Play(id string, volume float64) {
	data, ok := b.pcm[id]
	if !ok {
		log.Printf("Unknown sound: %s", id)
		return
	}
	b.prune()
	player := b.ctx.NewPlayerFromBytes(data)
	player.SetVolume(utils.Clamp(volume, 0, 1))
	player.Play()
	// Держим ссылку, пока звук играет
	b.playing = append(b.playing, player)
}

func (b *SoundBank) prune() {
	active := b.playing[:0]
	for _, p := range b.playing {
		if p.IsPlaying() {
			active = append(active, p)
			continue
		}
		if err := p.Close(); err != nil {
			log.Printf("Failed to close audio player: %v", err)
		}
	}
	b.playing = active
}

// OnEvent переводит игровые события в звуки.
func (b *SoundBank) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyFired, event.PlayerFired:
		if data, ok := e.Data.(event.FireData); ok {
			b.Play(SoundLaser, data.Volume)
		}
	case event.EnemyDestroyed, event.PlayerDestroyed:
		if data, ok := e.Data.(event.DestroyedData); ok {
			b.Play(SoundDeath, data.Volume)
		}
	}
}

// SynthesizeTone генерирует 16-битный стерео PCM (little endian) с затуханием.
// Шум детерминирован, чтобы звук был одинаковым между запусками.
func SynthesizeTone(spec ToneSpec, sampleRate int) []byte {
	n := int(spec.Length * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4)
	phase := 0.0
	var lfsr uint32 = 0xACE1
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := spec.Frequency * (1 + (spec.Sweep-1)*t)
		phase += 2 * math.Pi * freq / float64(sampleRate)

		lfsr = lfsr>>1 ^ (-(lfsr & 1) & 0xB400)
		noise := float64(lfsr&0xFFFF)/32768.0 - 1

		v := (1-spec.Noise)*math.Sin(phase) + spec.Noise*noise
		v *= (1 - t) * (1 - t) // затухание
		s := int16(v * 0.8 * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
