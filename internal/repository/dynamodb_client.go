package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"studio-site/internal/domain"
	"studio-site/internal/usecase"
)

const (
	pkPrefix    = "CONTENT#"
	skItem      = "ITEM#"
	skSingleton = "SINGLETON"
	skMarker    = "MARKER"
	skSub       = "SUB#"

	// maxTransactItems is the DynamoDB limit on actions per transaction.
	maxTransactItems = 100
)

// dynamodbAPI is the minimal DynamoDB interface required by Client.
// Defined here for testability.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ usecase.ContentRepository = (*Client)(nil)

// Client stores site content in a single DynamoDB table. Every collection
// is one partition; each entity is its own item.
type Client struct {
	api       dynamodbAPI
	tableName string
}

// New creates a new repository Client.
func New(api dynamodbAPI, tableName string) (*Client, error) {
	if api == nil {
		return nil, errors.New("repository: api must not be nil")
	}
	if strings.TrimSpace(tableName) == "" {
		return nil, errors.New("repository: table name must not be empty")
	}
	return &Client{api: api, tableName: tableName}, nil
}

func contentPK(key string) string {
	return pkPrefix + key
}

func itemSK(id string) string {
	return skItem + id
}

func subSK(email string) string {
	return skSub + strings.ToLower(strings.TrimSpace(email))
}

func keyOf(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}
}

// GetSingleton reads the single record stored under key.
func (c *Client) GetSingleton(ctx context.Context, key string) (domain.Record, bool, error) {
	return c.getRecord(ctx, key, skSingleton, "GetSingleton")
}

// PutSingleton overwrites the record stored under rec.Collection.
func (c *Client) PutSingleton(ctx context.Context, rec domain.Record) error {
	if rec.Collection == "" {
		return errors.New("repository: PutSingleton: collection is required")
	}
	rec.ID = ""
	_, err := c.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(c.tableName),
		Item:      recordItem(rec, skSingleton),
	})
	if err != nil {
		return fmt.Errorf("repository: PutSingleton: %w", err)
	}
	return nil
}

// ListCollection returns every item of key ordered by seq, and whether the
// collection marker exists.
func (c *Client) ListCollection(ctx context.Context, key string) ([]domain.Record, bool, error) {
	items, err := c.queryPartition(ctx, key, "")
	if err != nil {
		return nil, false, fmt.Errorf("repository: ListCollection query: %w", err)
	}

	initialized := false
	recs := make([]domain.Record, 0, len(items))
	for _, item := range items {
		sk, err := strAttr(item, "SK")
		if err != nil {
			return nil, false, fmt.Errorf("repository: ListCollection: %w", err)
		}
		switch {
		case sk == skMarker:
			initialized = true
		case strings.HasPrefix(sk, skItem):
			rec, err := itemToRecord(key, item)
			if err != nil {
				return nil, false, fmt.Errorf("repository: ListCollection unmarshal: %w", err)
			}
			recs = append(recs, rec)
		}
	}
	sortBySeq(recs)
	return recs, initialized, nil
}

// GetItem reads one collection item.
func (c *Client) GetItem(ctx context.Context, key, id string) (domain.Record, bool, error) {
	return c.getRecord(ctx, key, itemSK(id), "GetItem")
}

func (c *Client) getRecord(ctx context.Context, key, sk, op string) (domain.Record, bool, error) {
	out, err := c.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(c.tableName),
		Key:            keyOf(contentPK(key), sk),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return domain.Record{}, false, fmt.Errorf("repository: %s get item: %w", op, err)
	}
	if out == nil || len(out.Item) == 0 {
		return domain.Record{}, false, nil
	}
	rec, err := itemToRecord(key, out.Item)
	if err != nil {
		return domain.Record{}, false, fmt.Errorf("repository: %s unmarshal: %w", op, err)
	}
	return rec, true, nil
}

// SeedCollection writes the marker and recs in one transaction unless the
// marker already exists.
func (c *Client) SeedCollection(ctx context.Context, key string, recs []domain.Record) (bool, error) {
	if len(recs)+1 > maxTransactItems {
		return false, fmt.Errorf("repository: SeedCollection: %d records exceed the transaction limit", len(recs))
	}

	out, err := c.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(c.tableName),
		Key:            keyOf(contentPK(key), skMarker),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, fmt.Errorf("repository: SeedCollection get marker: %w", err)
	}
	if out != nil && len(out.Item) > 0 {
		return false, nil
	}

	tx := make([]types.TransactWriteItem, 0, len(recs)+1)
	tx = append(tx, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(c.tableName),
			Item:                markerItem(key),
			ConditionExpression: aws.String("attribute_not_exists(PK)"),
		},
	})
	for _, rec := range recs {
		rec.Collection = key
		tx = append(tx, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(c.tableName),
				Item:      recordItem(rec, itemSK(rec.ID)),
			},
		})
	}

	_, err = c.api.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: tx})
	if isConditionFailure(err) {
		// Another writer seeded first.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("repository: SeedCollection: %w", err)
	}
	return true, nil
}

// PutItem upserts rec. The seq of an existing item is kept.
func (c *Client) PutItem(ctx context.Context, rec domain.Record) error {
	if rec.Collection == "" || rec.ID == "" {
		return errors.New("repository: PutItem: collection and id are required")
	}
	_, err := c.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(c.tableName),
		Key:              keyOf(contentPK(rec.Collection), itemSK(rec.ID)),
		UpdateExpression: aws.String("SET #id = :id, #data = :data, #ver = :ver, #upd = :upd, #seq = if_not_exists(#seq, :seq)"),
		ExpressionAttributeNames: map[string]string{
			"#id":   "id",
			"#data": "data",
			"#ver":  "schemaVersion",
			"#upd":  "updatedAt",
			"#seq":  "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id":   &types.AttributeValueMemberS{Value: rec.ID},
			":data": &types.AttributeValueMemberS{Value: string(rec.Data)},
			":ver":  numValue(int64(rec.SchemaVersion)),
			":upd":  &types.AttributeValueMemberS{Value: formatTime(rec.UpdatedAt)},
			":seq":  numValue(rec.Seq),
		},
	})
	if err != nil {
		return fmt.Errorf("repository: PutItem: %w", err)
	}
	return nil
}

// DeleteItem removes one item and reports whether it existed.
func (c *Client) DeleteItem(ctx context.Context, key, id string) (bool, error) {
	out, err := c.api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(c.tableName),
		Key:          keyOf(contentPK(key), itemSK(id)),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, fmt.Errorf("repository: DeleteItem: %w", err)
	}
	return out != nil && len(out.Attributes) > 0, nil
}

// ReplaceCollection swaps the whole collection for recs in one transaction
// and marks it initialized.
func (c *Client) ReplaceCollection(ctx context.Context, key string, recs []domain.Record) error {
	existing, err := c.queryPartition(ctx, key, skItem)
	if err != nil {
		return fmt.Errorf("repository: ReplaceCollection query: %w", err)
	}

	keep := make(map[string]struct{}, len(recs))
	for _, rec := range recs {
		keep[itemSK(rec.ID)] = struct{}{}
	}

	tx := make([]types.TransactWriteItem, 0, len(existing)+len(recs)+1)
	for _, item := range existing {
		sk, err := strAttr(item, "SK")
		if err != nil {
			return fmt.Errorf("repository: ReplaceCollection: %w", err)
		}
		if _, ok := keep[sk]; ok {
			continue
		}
		tx = append(tx, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(c.tableName),
				Key:       keyOf(contentPK(key), sk),
			},
		})
	}
	for _, rec := range recs {
		rec.Collection = key
		tx = append(tx, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(c.tableName),
				Item:      recordItem(rec, itemSK(rec.ID)),
			},
		})
	}
	tx = append(tx, types.TransactWriteItem{
		Put: &types.Put{
			TableName: aws.String(c.tableName),
			Item:      markerItem(key),
		},
	})
	if len(tx) > maxTransactItems {
		return fmt.Errorf("repository: ReplaceCollection: %d writes exceed the transaction limit", len(tx))
	}

	if _, err := c.api.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: tx}); err != nil {
		return fmt.Errorf("repository: ReplaceCollection: %w", err)
	}
	return nil
}

// Subscribe creates the subscriber item or clears unsubscribedAt on an
// existing one. The condition rejects an email that is already active.
func (c *Client) Subscribe(ctx context.Context, sub domain.NewsletterSubscriber, seq int64) (bool, error) {
	email := strings.TrimSpace(sub.Email)
	if email == "" {
		return false, errors.New("repository: Subscribe: email is required")
	}
	_, err := c.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(c.tableName),
		Key:       keyOf(contentPK(domain.KeyNewsletter), subSK(email)),
		UpdateExpression: aws.String(
			"SET #id = if_not_exists(#id, :id), #email = if_not_exists(#email, :email), " +
				"#seq = if_not_exists(#seq, :seq), #at = :at REMOVE #unsub"),
		ConditionExpression: aws.String("attribute_not_exists(PK) OR attribute_exists(#unsub)"),
		ExpressionAttributeNames: map[string]string{
			"#id":    "id",
			"#email": "email",
			"#seq":   "seq",
			"#at":    "subscribedAt",
			"#unsub": "unsubscribedAt",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id":    &types.AttributeValueMemberS{Value: sub.ID},
			":email": &types.AttributeValueMemberS{Value: email},
			":seq":   numValue(seq),
			":at":    &types.AttributeValueMemberS{Value: sub.SubscribedAt},
		},
	})
	if isConditionFailure(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("repository: Subscribe: %w", err)
	}
	return true, nil
}

// Unsubscribe stamps unsubscribedAt on an active subscriber. It reports false
// when there is no active subscriber with that email.
func (c *Client) Unsubscribe(ctx context.Context, email, at string) (bool, error) {
	_, err := c.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(c.tableName),
		Key:                 keyOf(contentPK(domain.KeyNewsletter), subSK(email)),
		UpdateExpression:    aws.String("SET #unsub = :at"),
		ConditionExpression: aws.String("attribute_exists(PK) AND attribute_not_exists(#unsub)"),
		ExpressionAttributeNames: map[string]string{
			"#unsub": "unsubscribedAt",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":at": &types.AttributeValueMemberS{Value: at},
		},
	})
	if isConditionFailure(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("repository: Unsubscribe: %w", err)
	}
	return true, nil
}

// ListSubscribers returns every subscriber, active or not, in signup order.
func (c *Client) ListSubscribers(ctx context.Context) ([]domain.NewsletterSubscriber, error) {
	items, err := c.queryPartition(ctx, domain.KeyNewsletter, skSub)
	if err != nil {
		return nil, fmt.Errorf("repository: ListSubscribers query: %w", err)
	}

	type row struct {
		sub domain.NewsletterSubscriber
		seq int64
	}
	rows := make([]row, 0, len(items))
	for _, item := range items {
		sub, err := itemToSubscriber(item)
		if err != nil {
			return nil, fmt.Errorf("repository: ListSubscribers unmarshal: %w", err)
		}
		seq, _ := intAttr(item, "seq")
		rows = append(rows, row{sub: sub, seq: seq})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].seq < rows[j].seq })

	subs := make([]domain.NewsletterSubscriber, 0, len(rows))
	for _, r := range rows {
		subs = append(subs, r.sub)
	}
	return subs, nil
}

// queryPartition reads every item of a collection partition, following
// LastEvaluatedKey. An empty prefix matches all sort keys.
func (c *Client) queryPartition(ctx context.Context, key, prefix string) ([]map[string]types.AttributeValue, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(c.tableName),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: contentPK(key)},
		},
		ConsistentRead: aws.Bool(true),
	}
	if prefix != "" {
		in.KeyConditionExpression = aws.String("PK = :pk AND begins_with(SK, :prefix)")
		in.ExpressionAttributeValues[":prefix"] = &types.AttributeValueMemberS{Value: prefix}
	}

	var items []map[string]types.AttributeValue
	for {
		out, err := c.api.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		if out == nil {
			break
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return items, nil
}

// isConditionFailure reports a failed condition on a single write or inside
// a cancelled transaction.
func isConditionFailure(err error) bool {
	if err == nil {
		return false
	}
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return true
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
				return true
			}
		}
	}
	return false
}

func sortBySeq(recs []domain.Record) {
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Seq < recs[j].Seq })
}

func recordItem(rec domain.Record, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK":            &types.AttributeValueMemberS{Value: contentPK(rec.Collection)},
		"SK":            &types.AttributeValueMemberS{Value: sk},
		"id":            &types.AttributeValueMemberS{Value: rec.ID},
		"data":          &types.AttributeValueMemberS{Value: string(rec.Data)},
		"schemaVersion": numValue(int64(rec.SchemaVersion)),
		"seq":           numValue(rec.Seq),
		"updatedAt":     &types.AttributeValueMemberS{Value: formatTime(rec.UpdatedAt)},
	}
}

func markerItem(key string) map[string]types.AttributeValue {
	item := keyOf(contentPK(key), skMarker)
	item["createdAt"] = &types.AttributeValueMemberS{Value: formatTime(time.Now())}
	return item
}

// itemToRecord converts a DynamoDB attribute map to a Record.
func itemToRecord(key string, item map[string]types.AttributeValue) (domain.Record, error) {
	data, err := strAttr(item, "data")
	if err != nil {
		return domain.Record{}, err
	}
	id, _ := strAttr(item, "id") // empty for singletons
	version, err := intAttr(item, "schemaVersion")
	if err != nil {
		version = 1
	}
	seq, _ := intAttr(item, "seq")

	var updated time.Time
	if raw, err := strAttr(item, "updatedAt"); err == nil && raw != "" {
		updated, err = time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return domain.Record{}, fmt.Errorf("repository: parse updatedAt: %w", err)
		}
	}

	return domain.Record{
		Collection:    key,
		ID:            id,
		Data:          []byte(data),
		SchemaVersion: int(version),
		Seq:           seq,
		UpdatedAt:     updated,
	}, nil
}

func itemToSubscriber(item map[string]types.AttributeValue) (domain.NewsletterSubscriber, error) {
	id, err := strAttr(item, "id")
	if err != nil {
		return domain.NewsletterSubscriber{}, err
	}
	email, err := strAttr(item, "email")
	if err != nil {
		return domain.NewsletterSubscriber{}, err
	}
	subscribedAt, _ := strAttr(item, "subscribedAt")

	sub := domain.NewsletterSubscriber{ID: id, Email: email, SubscribedAt: subscribedAt}
	if at, err := strAttr(item, "unsubscribedAt"); err == nil {
		sub.UnsubscribedAt = &at
	}
	return sub, nil
}

func numValue(n int64) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(n, 10)}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func strAttr(item map[string]types.AttributeValue, key string) (string, error) {
	v, ok := item[key]
	if !ok {
		return "", fmt.Errorf("repository: missing attribute %q", key)
	}
	s, ok := v.(*types.AttributeValueMemberS)
	if !ok {
		return "", fmt.Errorf("repository: attribute %q is not a string", key)
	}
	return s.Value, nil
}

func intAttr(item map[string]types.AttributeValue, key string) (int64, error) {
	v, ok := item[key]
	if !ok {
		return 0, fmt.Errorf("repository: missing attribute %q", key)
	}
	n, ok := v.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("repository: attribute %q is not a number", key)
	}
	parsed, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("repository: parse attribute %q: %w", key, err)
	}
	return parsed, nil
}
