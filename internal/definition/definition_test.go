package definition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsdc/internal/definition"
	"fsdc/internal/diag"
	"fsdc/internal/source"
)

func pos(line, col int) source.Position {
	return source.NewPosition("TestApi.fsd", line, col)
}

func field(t *testing.T, name, typeName string, line int) *definition.ServiceFieldInfo {
	t.Helper()
	f, _ := definition.TryNewServiceField(name, typeName, definition.Info{Position: pos(line, 1)})
	return f
}

func messages(errs []*diag.DefinitionError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Error()
	}
	return out
}

func TestNewServiceMethodValid(t *testing.T) {
	req := []*definition.ServiceFieldInfo{field(t, "id", "string", 2)}
	resp := []*definition.ServiceFieldInfo{field(t, "widget", "Widget", 3)}

	m, err := definition.NewServiceMethod("getWidget", req, resp, definition.Info{
		Summary: "Gets a widget.",
		Remarks: []string{"line"},
	})
	require.NoError(t, err)
	assert.Equal(t, "getWidget", m.Name())
	assert.Equal(t, definition.MemberMethod, m.Kind())
	assert.Len(t, m.RequestFields(), 1)
	assert.Equal(t, "Widget", m.ResponseFields()[0].TypeName())
	assert.Equal(t, "Gets a widget.", m.Summary())
	assert.Equal(t, []string{"line"}, m.Remarks())
	assert.False(t, m.Position().IsValid())
}

func TestServiceMethodDefaults(t *testing.T) {
	m, err := definition.NewServiceMethod("do", nil, nil, definition.Info{})
	require.NoError(t, err)
	assert.Empty(t, m.Summary())
	assert.Empty(t, m.Remarks())
	assert.Empty(t, m.Attributes())
	assert.Empty(t, m.RequestFields())
}

func TestServiceMethodInvalidName(t *testing.T) {
	_, err := definition.NewServiceMethod("1do", nil, nil, definition.Info{Position: pos(1, 5)})
	require.Error(t, err)
	assert.Equal(t, "TestApi.fsd(1,5): Invalid name: 1do", err.Error())

	var de *diag.DefinitionError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, diag.DefInvalidName, de.Code)
}

func TestServiceMethodDuplicateFields(t *testing.T) {
	req := []*definition.ServiceFieldInfo{
		field(t, "id", "string", 2),
		field(t, "ID", "string", 3),
		field(t, "Id", "int32", 4),
	}
	resp := []*definition.ServiceFieldInfo{
		field(t, "value", "string", 6),
		field(t, "value", "string", 7),
	}

	m, errs := definition.TryNewServiceMethod("bad name", req, resp, definition.Info{Position: pos(1, 1)})
	require.NotNil(t, m, "lenient construction always returns the entity")
	assert.Equal(t, []string{
		"TestApi.fsd(1,1): Invalid name: bad name",
		"TestApi.fsd(3,1): Duplicate request field: ID",
		"TestApi.fsd(4,1): Duplicate request field: Id",
		"TestApi.fsd(7,1): Duplicate response field: value",
	}, messages(errs))

	_, err := definition.NewServiceMethod("bad name", req, resp, definition.Info{Position: pos(1, 1)})
	require.Error(t, err)
	assert.Equal(t, "TestApi.fsd(1,1): Invalid name: bad name", err.Error())
}

func TestSameNameInRequestAndResponseIsAllowed(t *testing.T) {
	_, err := definition.NewServiceMethod("echo",
		[]*definition.ServiceFieldInfo{field(t, "text", "string", 2)},
		[]*definition.ServiceFieldInfo{field(t, "text", "string", 3)},
		definition.Info{})
	assert.NoError(t, err)
}

func TestAttributes(t *testing.T) {
	p1, err := definition.NewAttributeParameter("method", "POST", pos(1, 7))
	require.NoError(t, err)
	p2, _ := definition.TryNewAttributeParameter("Method", "GET", pos(1, 21))

	attr, errs := definition.TryNewAttribute("http", []*definition.ServiceAttributeParameterInfo{p1, p2}, pos(1, 2))
	assert.Equal(t, []string{"TestApi.fsd(1,21): Duplicate attribute parameter: Method"}, messages(errs))
	assert.Equal(t, "POST", attr.Parameter("METHOD").Value())
	assert.Nil(t, attr.Parameter("path"))

	m, err := definition.NewServiceMethod("do", nil, nil, definition.Info{Attributes: []*definition.ServiceAttributeInfo{attr}})
	require.NoError(t, err, "attribute errors are not the method's own invariants")
	assert.Same(t, attr, m.Attribute("HTTP"))
	assert.Len(t, m.AttributesNamed("http"), 1)
	assert.Len(t, m.ValidationErrors(), 1)
}

func TestServiceMembers(t *testing.T) {
	method, _ := definition.TryNewServiceMethod("getWidget", nil, nil, definition.Info{Position: pos(2, 9)})
	dto, _ := definition.TryNewServiceDto("Widget", []*definition.ServiceFieldInfo{field(t, "id", "string", 4)}, definition.Info{Position: pos(3, 7)})
	red, _ := definition.TryNewServiceEnumValue("red", definition.Info{})
	enum, _ := definition.TryNewServiceEnum("Color", []*definition.ServiceEnumValueInfo{red}, definition.Info{Position: pos(5, 7)})
	notFound, _ := definition.TryNewServiceError("NotFound", definition.Info{})
	errSet, _ := definition.TryNewServiceErrorSet("ApiErrors", []*definition.ServiceErrorInfo{notFound}, definition.Info{Position: pos(6, 9)})

	svc, err := definition.NewService("TestApi", []definition.ServiceMemberInfo{method, dto, enum, errSet}, definition.Info{})
	require.NoError(t, err)

	assert.Len(t, svc.Members(), 4)
	assert.Equal(t, []*definition.ServiceMethodInfo{method}, svc.Methods())
	assert.Equal(t, []*definition.ServiceDtoInfo{dto}, svc.Dtos())
	assert.Equal(t, []*definition.ServiceEnumInfo{enum}, svc.Enums())
	assert.Equal(t, []*definition.ServiceErrorSetInfo{errSet}, svc.ErrorSets())
	assert.Equal(t, dto, svc.FindMember("widget"))
	assert.Nil(t, svc.FindMember("Gadget"))
	assert.Equal(t, "errors", errSet.Kind().Keyword())
}

func TestServiceValidationOrder(t *testing.T) {
	dupReq := []*definition.ServiceFieldInfo{field(t, "id", "string", 3), field(t, "id", "string", 4)}
	m1, _ := definition.TryNewServiceMethod("do", dupReq, nil, definition.Info{Position: pos(2, 9)})
	m2, _ := definition.TryNewServiceMethod("Do", nil, nil, definition.Info{Position: pos(6, 9)})
	v1, _ := definition.TryNewServiceEnumValue("x", definition.Info{Position: pos(8, 2)})
	v2, _ := definition.TryNewServiceEnumValue("X", definition.Info{Position: pos(9, 2)})
	enum, _ := definition.TryNewServiceEnum("Kind", []*definition.ServiceEnumValueInfo{v1, v2}, definition.Info{Position: pos(7, 7)})

	svc, errs := definition.TryNewService("Test Api", []definition.ServiceMemberInfo{m1, m2, enum}, definition.Info{Position: pos(1, 9)})
	assert.Equal(t, []string{
		"TestApi.fsd(1,9): Invalid name: Test Api",
		"TestApi.fsd(6,9): Duplicate service member: Do",
	}, messages(errs))

	assert.Equal(t, []string{
		"TestApi.fsd(1,9): Invalid name: Test Api",
		"TestApi.fsd(6,9): Duplicate service member: Do",
		"TestApi.fsd(4,1): Duplicate request field: id",
		"TestApi.fsd(9,2): Duplicate enum value: X",
	}, messages(svc.ValidationErrors()))

	_, err := definition.NewService("Test Api", []definition.ServiceMemberInfo{m1}, definition.Info{})
	assert.Error(t, err)
}

func TestInputSlicesAreCopied(t *testing.T) {
	req := []*definition.ServiceFieldInfo{field(t, "a", "string", 1)}
	remarks := []string{"one"}
	m, err := definition.NewServiceMethod("do", req, nil, definition.Info{Remarks: remarks})
	require.NoError(t, err)

	req[0] = field(t, "b", "string", 2)
	remarks[0] = "two"
	assert.Equal(t, "a", m.RequestFields()[0].Name())
	assert.Equal(t, []string{"one"}, m.Remarks())
}
