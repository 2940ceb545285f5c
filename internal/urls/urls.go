package urls

// Reference URLs shown in troubleshooting hints and command help

// ExecuteWebhook documents the execute-webhook endpoint and payload fields.
const ExecuteWebhook = "https://discord.com/developers/docs/resources/webhook#execute-webhook"

// EmbedLimits lists the length limits Discord enforces on embeds.
const EmbedLimits = "https://discord.com/developers/docs/resources/message#embed-object-embed-limits"

// RateLimits explains webhook rate limiting and retry_after.
const RateLimits = "https://discord.com/developers/docs/topics/rate-limits"

// CreateWebhook is the user guide for creating a webhook in a channel.
const CreateWebhook = "https://support.discord.com/hc/en-us/articles/228383668-Intro-to-Webhooks"

// DiscordStatus is Discord's service status page.
const DiscordStatus = "https://discordstatus.com"

// ProjectHome is shown in the wizard header.
const ProjectHome = "github.com/ptwebhook/ptwebhook"
