package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const notificationsCollection = "notifications"

// notificationDocument é o formato salvo no Mongo.
// Valor como string para não perder precisão (decimal não tem codec bson nativo).
type notificationDocument struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	TransferID  int64         `bson:"transfer_id"`
	RecipientID int64         `bson:"recipient_id"`
	Message     string        `bson:"message"`
	Amount      string        `bson:"amount"`
	Read        bool          `bson:"read"`
	CreatedAt   time.Time     `bson:"created_at"`
}

type NotificationRepository struct {
	collection *mongo.Collection
}

func NewNotificationRepository(client *mongo.Client, dbName string) *NotificationRepository {
	collection := client.Database(dbName).Collection(notificationsCollection)
	return &NotificationRepository{collection: collection}
}

// Save faz upsert por transfer_id: a mesma mensagem entregue duas vezes
// (redelivery do RabbitMQ) não duplica o aviso.
func (r *NotificationRepository) Save(ctx context.Context, n domain.Notification) error {
	doc := toDocument(n)

	filter := bson.D{{Key: "transfer_id", Value: doc.TransferID}}
	update := bson.D{{Key: "$setOnInsert", Value: doc}}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert notification: %w", err)
	}
	return nil
}

// EnsureIndexes cria o índice único em transfer_id.
func (r *NotificationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "transfer_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create notifications index: %w", err)
	}
	return nil
}

func toDocument(n domain.Notification) notificationDocument {
	createdAt := n.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return notificationDocument{
		TransferID:  n.TransferID,
		RecipientID: n.RecipientID,
		Message:     n.Message,
		Amount:      n.Amount.String(),
		Read:        n.Read,
		CreatedAt:   createdAt.UTC(),
	}
}
