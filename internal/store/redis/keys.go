package redis

// DefaultKeyPrefix namespaces every key written by the store.
const DefaultKeyPrefix = "portfolio"

const (
	collectionStatus    = "status_checks"
	collectionContact   = "contact_messages"
	collectionAnalytics = "analytics"
)

// Keys builds the Redis key layout under a single prefix.
//
//	<prefix>:<collection>:doc:<id>   JSON document
//	<prefix>:<collection>:index      ZSET id -> creation time (µs)
//	<prefix>:analytics:sections      ZSET section -> event count
type Keys struct {
	prefix string
}

// NewKeys returns the key layout for prefix, falling back to DefaultKeyPrefix.
func NewKeys(prefix string) Keys {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return Keys{prefix: prefix}
}

func (k Keys) doc(collection, id string) string {
	return k.prefix + ":" + collection + ":doc:" + id
}

func (k Keys) index(collection string) string {
	return k.prefix + ":" + collection + ":index"
}

// StatusCheck returns the document key of a status check
func (k Keys) StatusCheck(id string) string { return k.doc(collectionStatus, id) }

// StatusIndex returns the status checks index key
func (k Keys) StatusIndex() string { return k.index(collectionStatus) }

// ContactMessage returns the document key of a contact message
func (k Keys) ContactMessage(id string) string { return k.doc(collectionContact, id) }

// ContactIndex returns the contact messages index key
func (k Keys) ContactIndex() string { return k.index(collectionContact) }

// AnalyticsEvent returns the document key of an analytics event
func (k Keys) AnalyticsEvent(id string) string { return k.doc(collectionAnalytics, id) }

// AnalyticsIndex returns the analytics events index key
func (k Keys) AnalyticsIndex() string { return k.index(collectionAnalytics) }

// SectionCounts returns the per-section counter key
func (k Keys) SectionCounts() string { return k.prefix + ":" + collectionAnalytics + ":sections" }
