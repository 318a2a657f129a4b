package model

import "time"

// Config holds the complete pipeline configuration
type Config struct {
	LLM          LLMConfig          `yaml:"llm"`
	Research     ResearchConfig     `yaml:"research"`
	Social       SocialConfig       `yaml:"social"`
	Cache        CacheConfig        `yaml:"cache"`
	Orchestrator OrchestratorConfig `yaml:"orchestrator"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency"`
	RateLimiting RateLimitConfig    `yaml:"rate_limiting"`
}

// LLMConfig configures the reasoning capability used for structuring,
// translation, and verdict generation.
type LLMConfig struct {
	// Provider name: "gemini" or "openai"
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	APIKey   string        `yaml:"-"` // from environment only, never from file
	BaseURL  string        `yaml:"base_url,omitempty"`
	Timeout  time.Duration `yaml:"timeout"`
	// MaxRetries bounds retry attempts on an overloaded upstream
	MaxRetries int `yaml:"max_retries"`
}

// ResearchConfig configures the deep-research capability
type ResearchConfig struct {
	APIKey  string        `yaml:"-"`
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// SocialConfig configures the social evidence capability
type SocialConfig struct {
	Enabled     bool          `yaml:"enabled"`
	BearerToken string        `yaml:"-"`
	BaseURL     string        `yaml:"base_url"`
	SearchLimit int           `yaml:"search_limit"`
	Timeout     time.Duration `yaml:"timeout"`
	// PostsPerTier bounds retained posts per author tier to keep the
	// downstream verdict prompt small
	PostsPerTier int `yaml:"posts_per_tier"`
	// MaxExternalSources caps the deduplicated link list
	MaxExternalSources int `yaml:"max_external_sources"`

	// TamilNewsHandles are account handles classified as tamil_news outright
	TamilNewsHandles []string `yaml:"tamil_news_handles,omitempty"`
	// NationalNewsHandles are account handles classified as national_news outright
	NationalNewsHandles []string `yaml:"national_news_handles,omitempty"`
	// PrimaryDomains and SecondaryDomains drive link credibility tiers
	PrimaryDomains   []string `yaml:"primary_domains,omitempty"`
	SecondaryDomains []string `yaml:"secondary_domains,omitempty"`
}

// CacheConfig configures the claim cache
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Backend string `yaml:"backend"` // "memory" or "disk"
	Dir     string `yaml:"dir,omitempty"`
	// TTL of 0 keeps entries until process exit (memory) or forever (disk)
	TTL time.Duration `yaml:"ttl"`
}

// GatherMode selects how the two evidence gatherers are scheduled
type GatherMode string

const (
	// GatherParallel launches both gatherers concurrently with
	// independent timeouts.
	GatherParallel GatherMode = "parallel"
	// GatherSocialFirst runs the social gatherer first and feeds its
	// highest-priority posts to the research gatherer as leads.
	GatherSocialFirst GatherMode = "social_first"
)

// OrchestratorConfig configures evidence gathering
type OrchestratorConfig struct {
	Mode GatherMode `yaml:"mode"`
	// PrimaryTimeout bounds the required deep-research gatherer
	PrimaryTimeout time.Duration `yaml:"primary_timeout"`
	// SecondaryTimeout bounds the optional social gatherer
	SecondaryTimeout time.Duration `yaml:"secondary_timeout"`
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// RateLimitConfig configures outbound per-host rate limiting
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size"`
}

// DefaultConfig returns the standard configuration
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:   "gemini",
			Model:      "gemini-2.0-flash",
			Timeout:    30 * time.Second,
			MaxRetries: 3,
		},
		Research: ResearchConfig{
			BaseURL: "https://api.perplexity.ai",
			Model:   "sonar-pro",
			Timeout: 30 * time.Second,
		},
		Social: SocialConfig{
			Enabled:             true,
			BaseURL:             "https://api.twitter.com/2",
			SearchLimit:         30,
			Timeout:             15 * time.Second,
			PostsPerTier:        3,
			MaxExternalSources:  10,
			TamilNewsHandles:    defaultTamilNewsHandles(),
			NationalNewsHandles: defaultNationalNewsHandles(),
			PrimaryDomains:      defaultPrimaryDomains(),
			SecondaryDomains:    defaultSecondaryDomains(),
		},
		Cache: CacheConfig{
			Enabled: true,
			Backend: "memory",
		},
		Orchestrator: OrchestratorConfig{
			Mode:             GatherParallel,
			PrimaryTimeout:   60 * time.Second,
			SecondaryTimeout: 30 * time.Second,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 1.0,
			BurstSize:         5,
		},
	}
}

func defaultTamilNewsHandles() []string {
	return []string{
		"polimernews", "PTTVOnlineNews", "News7Tamil", "ThanthiTV",
		"SunNewsTamil", "news18tamilnadu", "DinamalarWeb", "dina_thanthi",
		"Dinamani", "VikatanNews", "dtnext",
	}
}

func defaultNationalNewsHandles() []string {
	return []string{
		"PTI_News", "ANI", "ndtv", "the_hindu", "IndianExpress",
		"htTweets", "timesofindia", "IndiaToday", "CNNnews18",
	}
}

func defaultPrimaryDomains() []string {
	return []string{
		// International wire agencies and broadcasters
		"reuters.com", "apnews.com", "afp.com",
		"bbc.com", "bbc.co.uk", "npr.org", "pbs.org",
		// Government and official bodies
		"europa.eu", "un.org", "who.int",
		// Academic and research
		"nature.com", "sciencedirect.com", "pubmed.ncbi.nlm.nih.gov",
	}
}

func defaultSecondaryDomains() []string {
	return []string{
		// Major newspapers
		"nytimes.com", "washingtonpost.com", "theguardian.com", "wsj.com",
		"economist.com", "ft.com", "thehindu.com", "indianexpress.com",
		"timesofindia.indiatimes.com", "hindustantimes.com",
		// News networks
		"cnn.com", "nbcnews.com", "abcnews.go.com", "cbsnews.com",
		"ndtv.com", "indiatoday.in",
		// Wire services
		"pti.in", "ani.in",
		// Fact-checkers
		"snopes.com", "factcheck.org", "politifact.com", "altnews.in",
		// Tamil Nadu regional news
		"dinamalar.com", "dailythanthi.com", "dinamani.com", "maalaimalar.com",
		"vikatan.com", "news7tamil.live", "puthiyathalaimurai.com",
		"polimernews.com", "dtnext.in",
		// Other regional and national Indian news
		"news18.com", "aajtak.in", "dainikbhaskar.com",
		"eenadu.net", "mathrubhumi.com", "manoramaonline.com",
		"deccanherald.com", "deccanchronicle.com",
		"newindianexpress.com", "oneindia.com",
		"thequint.com", "scroll.in", "theprint.in",
		"livemint.com", "business-standard.com",
	}
}
