package repositories

import "go.mongodb.org/mongo-driver/mongo/options"

func findAfterUpdate() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}
