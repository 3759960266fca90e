package dal

import (
	"context"
	"errors"
	"testing"

	"maintdesk-backend/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockDatabaseClient implements DatabaseClientInterface for testing
type MockDatabaseClient struct {
	mock.Mock
}

func (m *MockDatabaseClient) GetItem(ctx context.Context, config models.QueryConfig, result interface{}) error {
	args := m.Called(ctx, config, result)
	if args.Get(0) != nil {
		if mockResult, ok := args.Get(0).(map[string]interface{}); ok {
			if resultMap, ok := result.(*map[string]interface{}); ok {
				*resultMap = mockResult
			}
		}
	}
	return args.Error(1)
}

func (m *MockDatabaseClient) PutItem(ctx context.Context, tableName string, item interface{}) error {
	args := m.Called(ctx, tableName, item)
	return args.Error(0)
}

func (m *MockDatabaseClient) DeleteItem(ctx context.Context, config models.QueryConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockDatabaseClient) QueryByIndex(ctx context.Context, tableName, indexName, keyName, keyValue string, results interface{}) error {
	args := m.Called(ctx, tableName, indexName, keyName, keyValue, results)
	if args.Get(0) != nil {
		if mockResults, ok := args.Get(0).([]map[string]interface{}); ok {
			if resultSlice, ok := results.(*[]map[string]interface{}); ok {
				*resultSlice = mockResults
			}
		}
	}
	return args.Error(1)
}

func (m *MockDatabaseClient) Scan(ctx context.Context, tableName string, results interface{}) error {
	args := m.Called(ctx, tableName, results)
	if args.Get(0) != nil {
		if mockResults, ok := args.Get(0).([]map[string]interface{}); ok {
			if resultSlice, ok := results.(*[]map[string]interface{}); ok {
				*resultSlice = mockResults
			}
		}
	}
	return args.Error(1)
}

func (m *MockDatabaseClient) ScanTable(ctx context.Context, tableName string, results interface{}) error {
	args := m.Called(ctx, tableName, results)
	if args.Get(0) != nil {
		if mockResults, ok := args.Get(0).([]map[string]interface{}); ok {
			if resultSlice, ok := results.(*[]map[string]interface{}); ok {
				*resultSlice = mockResults
			}
		}
	}
	return args.Error(1)
}

func (m *MockDatabaseClient) CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockDatabaseClient) DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error) {
	args := m.Called(ctx, tableName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.DescribeTableOutput), args.Error(1)
}

// DALTestSuite defines a test suite for DAL functions
type DALTestSuite struct {
	suite.Suite
	mockClient *MockDatabaseClient
}

// SetupTest runs before each test
func (suite *DALTestSuite) SetupTest() {
	suite.mockClient = &MockDatabaseClient{}
}

// TearDownTest runs after each test
func (suite *DALTestSuite) TearDownTest() {
	suite.mockClient.AssertExpectations(suite.T())
}

// TestGetItemByPrimaryKey tests GetItem with primary key
func (suite *DALTestSuite) TestGetItemByPrimaryKey() {
	ctx := context.Background()
	config := models.QueryConfig{
		TableName: "dev_equipment",
		KeyName:   "id",
		KeyValue:  "7",
		KeyType:   models.NumberType,
	}

	mockResult := map[string]interface{}{
		"id":           "7",
		"serialNumber": "SN-0007",
	}

	suite.mockClient.On("GetItem", ctx, config, mock.AnythingOfType("*map[string]interface {}")).Return(mockResult, nil)

	var result map[string]interface{}
	err := suite.mockClient.GetItem(ctx, config, &result)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "7", result["id"])
	assert.Equal(suite.T(), "SN-0007", result["serialNumber"])
}

// TestGetItemError tests GetItem with error
func (suite *DALTestSuite) TestGetItemError() {
	ctx := context.Background()
	config := models.QueryConfig{
		TableName: "dev_equipment",
		KeyName:   "id",
		KeyValue:  "999",
		KeyType:   models.NumberType,
	}

	suite.mockClient.On("GetItem", ctx, config, mock.AnythingOfType("*map[string]interface {}")).Return(nil, errors.New("DynamoDB error"))

	var result map[string]interface{}
	err := suite.mockClient.GetItem(ctx, config, &result)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "DynamoDB error")
}

// TestPutItem tests the PutItem function
func (suite *DALTestSuite) TestPutItem() {
	ctx := context.Background()
	tableName := "dev_equipment"
	item := map[string]interface{}{
		"id":   "1",
		"name": "Насос ЦН-400",
	}

	suite.mockClient.On("PutItem", ctx, tableName, item).Return(nil)

	err := suite.mockClient.PutItem(ctx, tableName, item)
	assert.NoError(suite.T(), err)
}

// TestPutItemError tests PutItem with error
func (suite *DALTestSuite) TestPutItemError() {
	ctx := context.Background()
	tableName := "dev_equipment"
	item := map[string]interface{}{
		"id": "1",
	}

	suite.mockClient.On("PutItem", ctx, tableName, item).Return(errors.New("PutItem error"))

	err := suite.mockClient.PutItem(ctx, tableName, item)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "PutItem error")
}

// TestDeleteItem tests the DeleteItem function
func (suite *DALTestSuite) TestDeleteItem() {
	ctx := context.Background()
	config := models.QueryConfig{
		TableName: "dev_complaints",
		KeyName:   "id",
		KeyValue:  "1001",
		KeyType:   models.NumberType,
	}

	suite.mockClient.On("DeleteItem", ctx, config).Return(nil)

	err := suite.mockClient.DeleteItem(ctx, config)
	assert.NoError(suite.T(), err)
}

// TestQueryByIndex tests the QueryByIndex function
func (suite *DALTestSuite) TestQueryByIndex() {
	ctx := context.Background()
	tableName := "dev_events"
	indexName := "date-index"
	keyName := "date"
	keyValue := "2026-03-10"

	mockResults := []map[string]interface{}{
		{"id": "1", "date": "2026-03-10"},
		{"id": "2", "date": "2026-03-10"},
	}

	suite.mockClient.On("QueryByIndex", ctx, tableName, indexName, keyName, keyValue, mock.AnythingOfType("*[]map[string]interface {}")).Return(mockResults, nil)

	var results []map[string]interface{}
	err := suite.mockClient.QueryByIndex(ctx, tableName, indexName, keyName, keyValue, &results)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 2)
	assert.Equal(suite.T(), "1", results[0]["id"])
	assert.Equal(suite.T(), "2", results[1]["id"])
}

// TestScan tests the Scan function
func (suite *DALTestSuite) TestScan() {
	ctx := context.Background()
	tableName := "dev_equipment"

	mockResults := []map[string]interface{}{
		{"id": "1", "name": "Насос ЦН-400"},
		{"id": "2", "name": "Компрессор КВ-12"},
	}

	suite.mockClient.On("Scan", ctx, tableName, mock.AnythingOfType("*[]map[string]interface {}")).Return(mockResults, nil)

	var results []map[string]interface{}
	err := suite.mockClient.Scan(ctx, tableName, &results)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 2)
}

// TestScanError tests Scan with error
func (suite *DALTestSuite) TestScanError() {
	ctx := context.Background()
	tableName := "dev_equipment"

	suite.mockClient.On("Scan", ctx, tableName, mock.AnythingOfType("*[]map[string]interface {}")).Return(nil, errors.New("Scan error"))

	var results []map[string]interface{}
	err := suite.mockClient.Scan(ctx, tableName, &results)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "Scan error")
}

// TestCreateTable tests the CreateTable function
func (suite *DALTestSuite) TestCreateTable() {
	ctx := context.Background()
	input := &dynamodb.CreateTableInput{
		TableName: &[]string{"dev_equipment"}[0],
	}

	suite.mockClient.On("CreateTable", ctx, input).Return(nil)

	err := suite.mockClient.CreateTable(ctx, input)
	assert.NoError(suite.T(), err)
}

// TestDescribeTable tests the DescribeTable function
func (suite *DALTestSuite) TestDescribeTable() {
	ctx := context.Background()
	tableName := "dev_equipment"

	mockOutput := &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{
			TableName:   &tableName,
			TableStatus: types.TableStatusActive,
		},
	}

	suite.mockClient.On("DescribeTable", ctx, tableName).Return(mockOutput, nil)

	result, err := suite.mockClient.DescribeTable(ctx, tableName)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), result)
	assert.Equal(suite.T(), tableName, *result.Table.TableName)
}

// TestDescribeTableError tests DescribeTable with error
func (suite *DALTestSuite) TestDescribeTableError() {
	ctx := context.Background()
	tableName := "dev_missing"

	suite.mockClient.On("DescribeTable", ctx, tableName).Return(nil, errors.New("DescribeTable error"))

	result, err := suite.mockClient.DescribeTable(ctx, tableName)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), result)
}

// Run the test suite
func TestDALTestSuite(t *testing.T) {
	suite.Run(t, new(DALTestSuite))
}

// Standalone tests for additional coverage

func TestKeyAttributeString(t *testing.T) {
	attr := keyAttribute(models.StringType, "SN-0001")
	sv, ok := attr.(*types.AttributeValueMemberS)
	assert.True(t, ok)
	assert.Equal(t, "SN-0001", sv.Value)
}

func TestKeyAttributeNumber(t *testing.T) {
	attr := keyAttribute(models.NumberType, "42")
	nv, ok := attr.(*types.AttributeValueMemberN)
	assert.True(t, ok)
	assert.Equal(t, "42", nv.Value)
}

func TestKeyAttributeBinary(t *testing.T) {
	attr := keyAttribute(models.BinaryType, "abc")
	bv, ok := attr.(*types.AttributeValueMemberB)
	assert.True(t, ok)
	assert.Equal(t, []byte("abc"), bv.Value)
}

func TestQueryConfig(t *testing.T) {
	config := models.QueryConfig{
		TableName: "dev_events",
		IndexName: "date-index",
		KeyName:   "date",
		KeyValue:  "2026-03-10",
		KeyType:   models.StringType,
	}

	assert.Equal(t, "dev_events", config.TableName)
	assert.Equal(t, "date-index", config.IndexName)
	assert.Equal(t, "date", config.KeyName)
	assert.Equal(t, "2026-03-10", config.KeyValue)
	assert.Equal(t, models.StringType, config.KeyType)
}

// TestDatabaseClientInterface tests that our mock implements the interface correctly
func TestDatabaseClientInterface(t *testing.T) {
	mockClient := &MockDatabaseClient{}

	var dbClient DatabaseClientInterface = mockClient
	assert.NotNil(t, dbClient)
}
