package constants

// Centralized constants for headers, env keys and the Gemini integration.
const (
	// Environment variable keys
	EnvSessionSecret       = "SESSION_SECRET"
	EnvGeminiAPIKey        = "GEMINI_API_KEY"
	EnvConfigPath          = "COMBAT_CONFIG"
	EnvDatabasePath        = "COMBAT_DB"
	EnvSessionSecureCookie = "SESSION_SECURE_COOKIE"

	// HTTP headers and content types
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"

	ContentTypeJSON = "application/json"

	// Authorization prefix
	BearerPrefix = "Bearer "

	// Gemini API base URL, path template and model
	GeminiBaseURL             = "https://generativelanguage.googleapis.com"
	GeminiGenerateContentPath = "/v1beta/models/%s:generateContent"
	GeminiModel               = "gemini-2.5-flash"

	// Session / Cookie names
	CookieSessionName = "cc_session"

	// Defaults
	DefaultDatabasePath  = "clinical-combat.db"
	DefaultServerAddress = ":8080"
)

// Routes used by the backend router
const (
	RouteAPIPrefix = "/api"

	RouteAuthRegister = "/auth/register"
	RouteAuthLogin    = "/auth/login"
	RouteAuthLogout   = "/auth/logout"

	RouteVersion = "/version"

	RoutePlayer         = "/player"
	RoutePlayerSave     = "/player/save"
	RoutePlayerAllocate = "/player/allocate"
	RoutePlayerItemUse  = "/player/items/use"

	RouteDungeons  = "/dungeons"
	RouteItems     = "/items"
	RouteAbilities = "/abilities"
	RouteShopBuy   = "/shop/buy"

	RouteEncounters        = "/encounters"
	RouteEncounterAnswer   = "/encounters/answer"
	RouteEncounterNext     = "/encounters/next"
	RouteEncounterAbility  = "/encounters/ability"
	RouteEncounterHeal     = "/encounters/heal"
	RouteEncounterItem     = "/encounters/item"
	RouteEncounterContinue = "/encounters/continue"
	RouteEncounterLeave    = "/encounters/leave"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest     = "Invalid request"
	ErrAuthRequired       = "Authentication required"
	ErrInvalidSession     = "Invalid session"
	ErrInvalidCredentials = "Invalid username or password"
	ErrUsernameTaken      = "Username already registered"
	ErrPasswordTooShort   = "Password must be at least 6 characters"
	ErrUnknownDungeon     = "Unknown dungeon"
	ErrUnknownItem        = "Unknown item"
	ErrUnknownAbilityName = "Unknown ability"
	ErrFailedSaveGame     = "Failed to save game"
	ErrFailedCreateToken  = "Failed to create session"
)

// Logging field names
const (
	LogFieldUsername = "username"
	LogFieldDungeon  = "dungeon"
	LogFieldTopic    = "topic"
	LogFieldLevel    = "level"
	LogFieldKind     = "kind"
	LogFieldKey      = "key"
	LogFieldAddr     = "addr"
	LogFieldSource   = "source"
)
