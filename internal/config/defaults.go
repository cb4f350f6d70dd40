package config

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{Port: DefaultPort},
		Source: Source{File: DefaultFile},
		Render: Render{
			Variable: Default(DefaultVariable),
			Window:   Default(false),
		},
		Log: Log{Level: DefaultLogLevel},
	}
}
