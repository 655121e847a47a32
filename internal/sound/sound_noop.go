//go:build ci

package sound

// Sound effect names, kept in sync with the non-ci build.
const (
	SoundDraw    = "draw"
	SoundGunshot = "gunshot"
	SoundTick    = "tick"
	SoundVictory = "victory"
	SoundDefeat  = "defeat"
	SoundSaloon  = "saloon"
	SoundHolster = "holster"
)

type SoundManager struct{}

func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

func (sm *SoundManager) Init() error {
	return nil
}

func (sm *SoundManager) Play(name string) {
	// No-op
}

func (sm *SoundManager) Close() {
	// No-op
}
