package redis

const (
	// KeyDocument holds the entire reading-list document as one JSON value.
	KeyDocument = "readster:data"

	// ChannelChanges carries the new document after every successful
	// replace, so observers in any process sharing the Redis instance
	// stay consistent without polling.
	ChannelChanges = "readster:changes"
)
