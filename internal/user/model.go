package user

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username string             `bson:"username" json:"username"`
	// Stored and compared as plain text. Known-bad: hashing would
	// change the stored representation and the login query shape.
	Password string `bson:"password" json:"-"`
}
