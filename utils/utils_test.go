package utils

import (
	"encoding/json"
	"testing"

	"maintdesk-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// UtilsTestSuite defines a test suite for utils functions
type UtilsTestSuite struct {
	suite.Suite
}

// TestGetConfig tests the GetConfig function
func (suite *UtilsTestSuite) TestGetConfig() {
	config, err := GetConfig()
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), config)

	assert.Equal(suite.T(), "MaintDesk Backend", config.AppName)
	assert.Equal(suite.T(), "1.0.0", config.AppVersion)
	assert.Equal(suite.T(), "development", config.AppEnv)
	assert.Equal(suite.T(), "0.0.0.0", config.AppHost)
	assert.Equal(suite.T(), "8081", config.AppPort)
}

// TestLoad tests the Load function against the checked-in config file
func (suite *UtilsTestSuite) TestLoad() {
	config, err := Load()
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), config)

	assert.Equal(suite.T(), "us-east-1", config.AWSRegion)
	assert.Equal(suite.T(), "dev", config.DynamoDBTablePrefix)
	assert.Equal(suite.T(), "info", config.LogLevel)
	assert.Equal(suite.T(), "json", config.LogFormat)
	assert.Equal(suite.T(), []string{"*"}, config.CORSOrigins)
	assert.Equal(suite.T(), "/api/v1", config.BasePath)
	assert.Equal(suite.T(), []string{"equipment", "events", "complaints"}, config.Tables)
}

// TestLoadCrews tests that the crew roster is loaded
func (suite *UtilsTestSuite) TestLoadCrews() {
	config, err := Load()
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), config.Crews, 4)
	assert.Contains(suite.T(), config.Crews, "Бригада №1")
	assert.Contains(suite.T(), config.Crews, "Бригада №4")
}

// TestLoadStrictModesDefaultOff tests that strict modes default to disabled
func (suite *UtilsTestSuite) TestLoadStrictModesDefaultOff() {
	config, err := Load()
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), config.StrictSerialDedup)
	assert.False(suite.T(), config.StrictCrewValidation)
}

// TestValidate tests the validate function
func (suite *UtilsTestSuite) TestValidate() {
	config := &models.Config{
		AppEnv: "development",
		Crews:  []string{"Бригада №1"},
	}
	err := validate(config)
	assert.NoError(suite.T(), err)
}

// TestValidateEmptyCrews tests validation failure without crews
func (suite *UtilsTestSuite) TestValidateEmptyCrews() {
	config := &models.Config{
		AppEnv: "development",
	}
	err := validate(config)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "at least one crew")
}

// TestValidateProductionWithNoAWSCredentials tests production without AWS credentials
func (suite *UtilsTestSuite) TestValidateProductionWithNoAWSCredentials() {
	config := &models.Config{
		AppEnv:         "production",
		Crews:          []string{"Бригада №1"},
		AWSAccessKeyID: "",
	}
	err := validate(config)
	assert.NoError(suite.T(), err) // Should not error, just print warning
}

// TestPrintPrettyJSON tests the PrintPrettyJSON function
func (suite *UtilsTestSuite) TestPrintPrettyJSON() {
	data := map[string]interface{}{
		"name":  "test",
		"value": 123,
		"array": []string{"a", "b", "c"},
	}

	result := PrintPrettyJSON(data)
	assert.NotEmpty(suite.T(), result)

	// Verify it's valid JSON
	var parsed map[string]interface{}
	err := json.Unmarshal([]byte(result), &parsed)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "test", parsed["name"])
	assert.Equal(suite.T(), float64(123), parsed["value"]) // JSON numbers are float64
}

// TestPrintPrettyJSONWithNil tests PrintPrettyJSON with nil input
func (suite *UtilsTestSuite) TestPrintPrettyJSONWithNil() {
	result := PrintPrettyJSON(nil)
	assert.Equal(suite.T(), "null", result)
}

// TestPrintPrettyJSONWithStruct tests PrintPrettyJSON with struct
func (suite *UtilsTestSuite) TestPrintPrettyJSONWithStruct() {
	type TestStruct struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}

	data := TestStruct{Name: "test", Value: 42}
	result := PrintPrettyJSON(data)
	assert.NotEmpty(suite.T(), result)
	assert.Contains(suite.T(), result, "\"name\": \"test\"")
	assert.Contains(suite.T(), result, "\"value\": 42")
}

// TestPrintPrettyJSONWithInvalidData tests PrintPrettyJSON with non-serializable data
func (suite *UtilsTestSuite) TestPrintPrettyJSONWithInvalidData() {
	// Create a channel which cannot be marshaled to JSON
	invalidData := make(chan int)
	result := PrintPrettyJSON(invalidData)
	assert.Empty(suite.T(), result)
}

// TestGenerateUUID tests the GenerateUUID function
func (suite *UtilsTestSuite) TestGenerateUUID() {
	id1 := GenerateUUID()
	id2 := GenerateUUID()

	assert.NotEmpty(suite.T(), id1)
	assert.NotEmpty(suite.T(), id2)
	assert.NotEqual(suite.T(), id1, id2)

	_, err := uuid.Parse(id1)
	assert.NoError(suite.T(), err)

	_, err = uuid.Parse(id2)
	assert.NoError(suite.T(), err)
}

// TestGenerateUUIDUniqueness tests UUID uniqueness
func (suite *UtilsTestSuite) TestGenerateUUIDUniqueness() {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateUUID()
		assert.False(suite.T(), seen[id], "Generated duplicate UUID: %s", id)
		seen[id] = true
	}
}

// Run the test suite
func TestUtilsTestSuite(t *testing.T) {
	suite.Run(t, new(UtilsTestSuite))
}

// Standalone tests for edge cases

func TestUUIDFormatValidation(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := GenerateUUID()

		// Check UUID format (should be 36 characters with dashes)
		assert.Len(t, id, 36)
		assert.Contains(t, id, "-")

		for _, char := range id {
			assert.True(t,
				(char >= '0' && char <= '9') ||
					(char >= 'a' && char <= 'f') ||
					(char >= 'A' && char <= 'F') ||
					char == '-',
				"Invalid character in UUID: %c", char)
		}
	}
}

func TestKnowsCrew(t *testing.T) {
	config := &models.Config{
		Crews: []string{"Бригада №1", "Бригада №2"},
	}

	assert.True(t, config.KnowsCrew("Бригада №1"))
	assert.True(t, config.KnowsCrew("Бригада №2"))
	assert.False(t, config.KnowsCrew("Бригада №9"))
	assert.False(t, config.KnowsCrew(""))
}
