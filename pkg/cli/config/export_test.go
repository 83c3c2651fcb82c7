package config

// NewTaxonomyForTest creates a Taxonomy config for testing purposes
func NewTaxonomyForTest(configPath string) *Taxonomy {
	return &Taxonomy{
		configPath: configPath,
	}
}

// NewGeminiForTest creates a Gemini config for testing purposes
func NewGeminiForTest(apiKey, model string) *Gemini {
	return &Gemini{
		apiKey: apiKey,
		model:  model,
	}
}

// NewChatForTest creates a Chat config for testing purposes
func NewChatForTest(projectID, location string) *Chat {
	return &Chat{
		projectID: projectID,
		location:  location,
	}
}

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend string) *Repository {
	return &Repository{
		backend: backend,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}
