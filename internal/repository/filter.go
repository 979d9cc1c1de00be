package repository

import "go.mongodb.org/mongo-driver/bson"

// Filter converts query-style key/value pairs into a store filter matching
// every given field exactly. An empty map matches all documents.
func Filter(params map[string]string) bson.M {
	f := bson.M{}
	for k, v := range params {
		f[k] = v
	}
	return f
}

// StripProtected removes identity and version keys from an update document
// so a client can never overwrite them, even if supplied. The remaining
// fields are merged onto the existing document.
func StripProtected(fields bson.M) bson.M {
	out := bson.M{}
	for k, v := range fields {
		switch k {
		case "_id", "__v", "_v", "id":
			continue
		}
		out[k] = v
	}
	return out
}
