// Package dynamo implements the storage abstraction on DynamoDB: one table
// per collection with a numeric id PK, plus a counters table whose atomic
// ADD issues identifiers server-side. That removes the read-then-allocate
// race the localfile backend accepts.
//
// Table requirements:
//   - clients/budgets/materials/users: PK id (N)
//   - counters: PK name (S), attribute seq (N)
package dynamo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultClientsTable   = "clients"
	defaultBudgetsTable   = "budgets"
	defaultMaterialsTable = "materials"
	defaultUsersTable     = "users"
	defaultCountersTable  = "counters"

	batchWriteChunk = 25
)

type StorageService struct {
	ddb            *dynamodb.Client
	clientsTable   string
	budgetsTable   string
	materialsTable string
	usersTable     string
	countersTable  string
}

var (
	_ interfaces.IStorageService = (*StorageService)(nil)
	_ interfaces.IUserRepository = (*StorageService)(nil)
)

func New(ddb *dynamodb.Client) *StorageService {
	return &StorageService{
		ddb:            ddb,
		clientsTable:   getenvDefault("CLIENTS_TABLE", defaultClientsTable),
		budgetsTable:   getenvDefault("BUDGETS_TABLE", defaultBudgetsTable),
		materialsTable: getenvDefault("MATERIALS_TABLE", defaultMaterialsTable),
		usersTable:     getenvDefault("USERS_TABLE", defaultUsersTable),
		countersTable:  getenvDefault("COUNTERS_TABLE", defaultCountersTable),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func numericKey(id int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
	}
}

// nextID reserves the next identifier for a collection via an atomic
// counter increment.
func (s *StorageService) nextID(ctx context.Context, collection string) (int, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.countersTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: collection},
		},
		UpdateExpression:         aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{"#seq": "seq"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, fmt.Errorf("dynamo: reserving %s id: %w", collection, err)
	}
	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("dynamo: counter %s returned no sequence", collection)
	}
	return strconv.Atoi(n.Value)
}

// putNew writes a freshly allocated record unconditionally.
func (s *StorageService) putNew(ctx context.Context, table string, record any) error {
	av, err := attributevalue.MarshalMap(record)
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      av,
	})
	return err
}

// putExisting overwrites a record only when its id already exists. A failed
// condition reports "missing" so callers can honor the silent no-op
// contract.
func (s *StorageService) putExisting(ctx context.Context, table string, record any) (found bool, err error) {
	av, err := attributevalue.MarshalMap(record)
	if err != nil {
		return false, err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *StorageService) deleteByID(ctx context.Context, table string, id int) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       numericKey(id),
	})
	return err
}

func scanAll[T any](ctx context.Context, s *StorageService, table string) ([]T, error) {
	var out []T
	var startKey map[string]types.AttributeValue
	for {
		resp, err := s.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		var page []T
		if err := attributevalue.UnmarshalListOfMaps(resp.Items, &page); err != nil {
			return nil, err
		}
		out = append(out, page...)
		if len(resp.LastEvaluatedKey) == 0 {
			return out, nil
		}
		startKey = resp.LastEvaluatedKey
	}
}

// Clientes

func (s *StorageService) SaveClient(ctx context.Context, client entities.Client) (entities.Client, error) {
	id, err := s.nextID(ctx, "clients")
	if err != nil {
		return entities.Client{}, err
	}
	client.ID = id
	if err := s.putNew(ctx, s.clientsTable, toClientRecord(client)); err != nil {
		return entities.Client{}, err
	}
	return client, nil
}

func (s *StorageService) GetClients(ctx context.Context) ([]entities.Client, error) {
	records, err := scanAll[clientRecord](ctx, s, s.clientsTable)
	if err != nil {
		return nil, err
	}
	clients := make([]entities.Client, len(records))
	for i, r := range records {
		clients[i] = r.toEntity()
	}
	return clients, nil
}

func (s *StorageService) GetClientByName(ctx context.Context, name string) (entities.Client, error) {
	clients, err := s.GetClients(ctx)
	if err != nil {
		return entities.Client{}, err
	}
	for _, c := range clients {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return entities.Client{}, nil
}

func (s *StorageService) UpdateClient(ctx context.Context, client entities.Client) (entities.Client, error) {
	found, err := s.putExisting(ctx, s.clientsTable, toClientRecord(client))
	if err != nil {
		return entities.Client{}, err
	}
	if !found {
		return entities.Client{}, nil
	}
	return client, nil
}

func (s *StorageService) DeleteClient(ctx context.Context, clientID int) error {
	return s.deleteByID(ctx, s.clientsTable, clientID)
}

// Materiais

func (s *StorageService) SaveMaterial(ctx context.Context, material entities.Material) (entities.Material, error) {
	id, err := s.nextID(ctx, "materials")
	if err != nil {
		return entities.Material{}, err
	}
	material.ID = id
	if err := s.putNew(ctx, s.materialsTable, toMaterialRecord(material)); err != nil {
		return entities.Material{}, err
	}
	return material, nil
}

func (s *StorageService) GetMaterials(ctx context.Context) ([]entities.Material, error) {
	records, err := scanAll[materialRecord](ctx, s, s.materialsTable)
	if err != nil {
		return nil, err
	}
	materials := make([]entities.Material, len(records))
	for i, r := range records {
		materials[i] = r.toEntity()
	}
	return materials, nil
}

func (s *StorageService) UpdateMaterial(ctx context.Context, materialID int, patch entities.MaterialPatch) (entities.Material, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.materialsTable),
		Key:            numericKey(materialID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Material{}, err
	}
	if len(out.Item) == 0 {
		return entities.Material{}, nil
	}

	var record materialRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return entities.Material{}, err
	}
	updated := patch.Apply(record.toEntity())

	found, err := s.putExisting(ctx, s.materialsTable, toMaterialRecord(updated))
	if err != nil {
		return entities.Material{}, err
	}
	if !found {
		// Deleted between read and write; keep the no-op contract.
		return entities.Material{}, nil
	}
	return updated, nil
}

func (s *StorageService) DeleteMaterial(ctx context.Context, materialID int) error {
	return s.deleteByID(ctx, s.materialsTable, materialID)
}
