package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/ports"
)

type TaskRepository struct {
	collection *mongo.Collection
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(collection *mongo.Collection) *TaskRepository {
	return &TaskRepository{collection: collection}
}

type taskDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Status      string             `bson:"status"`
	Priority    string             `bson:"priority"`
	DueDate     *time.Time         `bson:"dueDate"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (r *TaskRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, err
	}

	var docs []taskDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, mapTaskDocumentToDomainTask(doc))
	}

	return tasks, nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	doc := taskDocument{
		Title:       input.Title,
		Description: input.Description,
		Status:      string(input.Status),
		Priority:    string(input.Priority),
		DueDate:     input.DueDate,
		CreatedAt:   time.Now().UTC(),
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return domain.Task{}, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.Task{}, errors.New("unexpected inserted id type")
	}
	doc.ID = insertedID

	return mapTaskDocumentToDomainTask(doc), nil
}

func (r *TaskRepository) UpdateTask(ctx context.Context, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	update := bson.M{}
	if input.Title != nil {
		update["title"] = *input.Title
	}
	if input.DescriptionSet {
		// An explicit null resets the description to its empty default.
		description := ""
		if input.Description != nil {
			description = *input.Description
		}
		update["description"] = description
	}
	if input.Status != nil {
		update["status"] = string(*input.Status)
	}
	if input.Priority != nil {
		update["priority"] = string(*input.Priority)
	}
	if input.DueDateSet {
		update["dueDate"] = input.DueDate
	}

	var doc taskDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskDocumentToDomainTask(doc), nil
}

func (r *TaskRepository) DeleteTask(ctx context.Context, taskID string) (domain.Task, error) {
	objectID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	var doc taskDocument
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskDocumentToDomainTask(doc), nil
}

func mapTaskDocumentToDomainTask(doc taskDocument) domain.Task {
	task := domain.Task{
		ID:          doc.ID.Hex(),
		Title:       doc.Title,
		Description: doc.Description,
		Status:      domain.TaskStatus(doc.Status),
		Priority:    domain.TaskPriority(doc.Priority),
		CreatedAt:   doc.CreatedAt,
	}

	if doc.DueDate != nil {
		value := *doc.DueDate
		task.DueDate = &value
	}

	return task
}
