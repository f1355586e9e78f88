package constant

// Logger module names.
const (
	ModuleChatService  = "ChatService"
	ModuleAuthService  = "AuthService"
	ModuleConsumer     = "ConsumerService"
	ModuleEventService = "EventService"
	ModuleWebsocket    = "Websocket"
	ModuleServer       = "Server"
)

// Watermill topic carrying domain events inside the process.
const TopicDomainEvents = "domain.events"
