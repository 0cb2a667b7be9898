package store

// Collection names one of the four independent record sets.
type Collection string

const (
	CollectionDocuments   Collection = "documents"
	CollectionServices    Collection = "services"
	CollectionMessages    Collection = "messages"
	CollectionCredentials Collection = "credentials"
)

// KeySet is where one collection lives: the stable key plus the legacy keys
// it may be migrated from, newest layout first.
type KeySet struct {
	Stable string
	Legacy []string
}

// Layout maps every collection to its keys.
type Layout map[Collection]KeySet

// collectionOrder fixes the order migration visits collections in.
var collectionOrder = []Collection{
	CollectionDocuments,
	CollectionServices,
	CollectionMessages,
	CollectionCredentials,
}

// DefaultLayout is the key layout the site has always used.
func DefaultLayout() Layout {
	return Layout{
		CollectionDocuments: {
			Stable: "isebirbax.documents",
			Legacy: []string{"ise_bir_bax_docs_v2", "ise_bir_bax_docs"},
		},
		CollectionServices: {
			Stable: "isebirbax.services",
			Legacy: []string{"ise_bir_bax_services_v1", "ise_bir_bax_services"},
		},
		CollectionMessages: {
			Stable: "isebirbax.messages",
			Legacy: []string{"ise_bir_bax_messages_v1", "ise_bir_bax_messages"},
		},
		CollectionCredentials: {
			Stable: "isebirbax.admin",
			Legacy: []string{"ise_bir_bax_admin_v1", "ise_bir_bax_admin"},
		},
	}
}
