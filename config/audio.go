package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundPunch
	SoundShoot
	SoundHit
	SoundEnemyDown
	SoundHurt
	SoundDeath
	// Movement sounds
	SoundJump
	// Enemy sounds
	SoundHonk
	SoundRev
	// Pickups and flow
	SoundPickup
	SoundLevelComplete
	SoundGameOver
	// UI sounds
	SoundMenuSelect
	SoundMenuBack
)

// Tone is a synthesized sound: a square-ish beep that slides from
// Frequency to EndFrequency over Duration seconds.
type Tone struct {
	Name         string
	Frequency    float64
	EndFrequency float64
	Duration     float64
	Volume       float64
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their tones.
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

// String returns the name hosts use for playSound.
func (id SoundID) String() string {
	if t, ok := Sound.Tones[id]; ok {
		return t.Name
	}
	return "none"
}

func init() {
	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundPunch:         {Name: "punch", Frequency: 220, EndFrequency: 110, Duration: 0.08, Volume: 0.8},
			SoundShoot:         {Name: "shoot", Frequency: 880, EndFrequency: 440, Duration: 0.06, Volume: 0.5},
			SoundHit:           {Name: "hit", Frequency: 330, EndFrequency: 160, Duration: 0.07, Volume: 0.7},
			SoundEnemyDown:     {Name: "enemy_down", Frequency: 520, EndFrequency: 90, Duration: 0.25, Volume: 0.7},
			SoundHurt:          {Name: "hurt", Frequency: 180, EndFrequency: 120, Duration: 0.15, Volume: 0.8},
			SoundDeath:         {Name: "death", Frequency: 400, EndFrequency: 60, Duration: 0.6, Volume: 0.8},
			SoundJump:          {Name: "jump", Frequency: 300, EndFrequency: 600, Duration: 0.1, Volume: 0.5},
			SoundHonk:          {Name: "honk", Frequency: 415, EndFrequency: 415, Duration: 0.2, Volume: 0.6},
			SoundRev:           {Name: "rev", Frequency: 90, EndFrequency: 260, Duration: 0.3, Volume: 0.5},
			SoundPickup:        {Name: "pickup", Frequency: 660, EndFrequency: 990, Duration: 0.12, Volume: 0.6},
			SoundLevelComplete: {Name: "level_complete", Frequency: 523, EndFrequency: 1046, Duration: 0.5, Volume: 0.7},
			SoundGameOver:      {Name: "game_over", Frequency: 300, EndFrequency: 80, Duration: 0.9, Volume: 0.7},
			SoundMenuSelect:    {Name: "menu_select", Frequency: 740, EndFrequency: 740, Duration: 0.05, Volume: 0.4},
			SoundMenuBack:      {Name: "menu_back", Frequency: 370, EndFrequency: 370, Duration: 0.05, Volume: 0.4},
		},
	}
}

// ToneByName looks up a tone by the name passed to playSound.
func ToneByName(name string) (Tone, bool) {
	for _, t := range Sound.Tones {
		if t.Name == name {
			return t, true
		}
	}
	return Tone{}, false
}
