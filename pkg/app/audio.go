package app

import (
	"encoding/binary"
	"log"
	"math"
	"math/rand/v2"

	"github.com/decker502/cannonade/pkg/hooks"
	"github.com/decker502/cannonade/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// sampleRate 音频采样率
const sampleRate = 44100

// tone 一段扫频音，可混入噪声
type tone struct {
	from, to float64
	duration float64
	noise    float64
}

// effectTones 每个特效对应的合成音色
var effectTones = map[hooks.EffectID]tone{
	hooks.EffectFire:   {from: 90, to: 40, duration: 0.35, noise: 0.6},
	hooks.EffectMuzzle: {from: 600, to: 200, duration: 0.08, noise: 0.3},
	hooks.EffectHit:    {from: 440, to: 180, duration: 0.18, noise: 0.2},
	hooks.EffectLose:   {from: 330, to: 82, duration: 1.4},
}

// SoundBank 特效音播放器
//
// 没有音频资源文件，所有音效在启动时按 effectTones 合成为 PCM，
// 之后每次播放只需 Rewind + Play。
type SoundBank struct {
	players map[hooks.EffectID]*audio.Player
	volume  float64
}

// NewSoundBank 创建并预生成全部音效
//
// 参数：
//   - volume: 音量 (0.0 ~ 1.0)
func NewSoundBank(volume float64) *SoundBank {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}

	b := &SoundBank{
		players: make(map[hooks.EffectID]*audio.Player, len(effectTones)),
		volume:  utils.Clamp(volume, 0, 1),
	}
	for id, t := range effectTones {
		b.players[id] = ctx.NewPlayerFromBytes(synthesize(t, sampleRate))
	}
	return b
}

// Play 播放特效音
//
// 返回：
//   - bool: 是否成功播放
func (b *SoundBank) Play(effect hooks.EffectID) bool {
	player, ok := b.players[effect]
	if !ok {
		return false
	}
	player.SetVolume(b.volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[SoundBank] Warning: Failed to rewind sound %s: %v", effect, err)
	}
	player.Play()
	return true
}

// synthesize 生成 16 位小端立体声 PCM
func synthesize(t tone, rate int) []byte {
	n := int(t.duration * float64(rate))
	buf := make([]byte, n*4)
	rng := rand.New(rand.NewPCG(uint64(t.from), uint64(n)))

	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		phase += 2 * math.Pi * utils.Lerp(t.from, t.to, p) / float64(rate)

		s := math.Sin(phase)*(1-t.noise) + (rng.Float64()*2-1)*t.noise
		env := 1 - utils.EaseOutQuad(p)
		v := int16(utils.Clamp(s*env, -1, 1) * 0.6 * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
