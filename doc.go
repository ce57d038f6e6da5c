// Package botbuilder provides a Go client SDK for the BotBuilder API.
//
// The SDK exposes each REST resource as a small service on [Client]:
// [BotsService], [MessagesService], [KnowledgeService], [AnalyticsService]
// and [WebhooksService]. Every method performs exactly one HTTP request and
// returns the decoded JSON as an [Object] (or a slice of them) without
// reshaping it.
//
// Basic usage:
//
//	client, err := botbuilder.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	bot, err := client.Bots.Create(ctx, botbuilder.BotParams{Name: "support"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reply, err := client.Messages.Send(ctx, botbuilder.MessageParams{
//	    BotID:   bot.String("id"),
//	    Message: "Hello!",
//	})
//
// When the API key argument is empty, New reads BOTBUILDER_API_KEY. If that is
// empty as well, New fails with an error matching [ErrMissingAPIKey] before
// any network activity.
//
// Non-2xx responses are returned as [*APIError]; use errors.Is with the
// sentinel errors ([ErrNotFound], [ErrUnauthorized], ...) or errors.As to
// read the status code and body. Failures before a response is received are
// returned as [*NetworkError]. Nothing is retried.
package botbuilder
