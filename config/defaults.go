package config

// Default returns a fresh configuration with the stock tuning
func Default() *Config {
	return &Config{
		Game: GameConfig{
			Count:      3,
			Size:       200,
			ClickToAdd: true,
			EyeBlink:   true,
		},
		Physics: PhysicsConfig{
			Gravity:              0.5,
			Bounce:               0.7,
			Friction:             0.5,
			RotationSpeed:        0.3,
			Collision:            true,
			CollisionDamping:     0.99,
			CursorImpulse:        20,
			ThrowPower:           1.0,
			BounceResponsiveness: 1.0,
		},
		Audio: AudioConfig{
			Enabled:       true,
			Master:        0.3,
			Grab:          1.0,
			Bounce:        0.3,
			Create:        1.0,
			Remove:        1.0,
			Idle:          0.8,
			IdleFrequency: 0.5,
		},
		Window: WindowConfig{
			Inertia:  true,
			Strength: 0.1,
		},
		Merge: MergeConfig{
			Enabled:       true,
			SizeTolerance: 0.2,
			GrowthFactor:  1.2,
			MaxSize:       400,
			Impulse:       5,
		},
		Shiny: ShinyConfig{
			Enabled:         true,
			SpawnChance:     0.05,
			GlowColor:       [3]float64{1.0, 0.85, 0.3},
			GlowIntensity:   3,
			PulseSpeed:      2,
			Bloom:           true,
			Explosion:       true,
			Shockwave:       true,
			ExplosionRadius: 300,
			ExplosionForce:  50,
			IntervalMin:     3,
			IntervalMax:     8,
		},
		Groups: GroupsConfig{
			Sad:         []int{9, 10},
			Idle:        []int{1, 2, 3, 4, 5, 6, 7, 8},
			Idle2:       []int{11, 12, 13},
			DragVoice:   []int{0, 1, 2, 3},
			BounceVoice: []int{16},
			CreateVoice: []int{4},
			RemoveVoice: []int{15, 16},
			IdleVoice:   []int{5, 6, 7, 8, 9, 10, 11},
			Idle2Voice:  []int{12, 14},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "logs/speaki-box.log",
		},
	}
}

// EffectiveMaxSize returns the merge size cap, falling back to spawn size when unset
func (c *Config) EffectiveMaxSize() float64 {
	if c.Merge.MaxSize <= 0 {
		return c.Game.Size
	}
	return c.Merge.MaxSize
}
