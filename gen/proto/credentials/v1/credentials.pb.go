// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: credentials/v1/credentials.proto

package credentialsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type UploadCredentialRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	ProfileId         string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Filename          string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Content           []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	CertificateName   string                 `protobuf:"bytes,4,opt,name=certificate_name,json=certificateName,proto3" json:"certificate_name,omitempty"`
	Issuer            string                 `protobuf:"bytes,5,opt,name=issuer,proto3" json:"issuer,omitempty"`
	CertificateNumber string                 `protobuf:"bytes,6,opt,name=certificate_number,json=certificateNumber,proto3" json:"certificate_number,omitempty"`
	// Optional public registry URL for corroboration.
	CertificateUrl string `protobuf:"bytes,7,opt,name=certificate_url,json=certificateUrl,proto3" json:"certificate_url,omitempty"`
	// Declared skills, either a JSON array or comma-separated.
	Skills        string `protobuf:"bytes,8,opt,name=skills,proto3" json:"skills,omitempty"`
	DeclaredLevel int32  `protobuf:"varint,9,opt,name=declared_level,json=declaredLevel,proto3" json:"declared_level,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadCredentialRequest) Reset() {
	*x = UploadCredentialRequest{}
	mi := &file_credentials_v1_credentials_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadCredentialRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadCredentialRequest) ProtoMessage() {}

func (x *UploadCredentialRequest) ProtoReflect() protoreflect.Message {
	mi := &file_credentials_v1_credentials_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadCredentialRequest.ProtoReflect.Descriptor instead.
func (*UploadCredentialRequest) Descriptor() ([]byte, []int) {
	return file_credentials_v1_credentials_proto_rawDescGZIP(), []int{0}
}

func (x *UploadCredentialRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *UploadCredentialRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadCredentialRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *UploadCredentialRequest) GetCertificateName() string {
	if x != nil {
		return x.CertificateName
	}
	return ""
}

func (x *UploadCredentialRequest) GetIssuer() string {
	if x != nil {
		return x.Issuer
	}
	return ""
}

func (x *UploadCredentialRequest) GetCertificateNumber() string {
	if x != nil {
		return x.CertificateNumber
	}
	return ""
}

func (x *UploadCredentialRequest) GetCertificateUrl() string {
	if x != nil {
		return x.CertificateUrl
	}
	return ""
}

func (x *UploadCredentialRequest) GetSkills() string {
	if x != nil {
		return x.Skills
	}
	return ""
}

func (x *UploadCredentialRequest) GetDeclaredLevel() int32 {
	if x != nil {
		return x.DeclaredLevel
	}
	return 0
}

type UploadCredentialResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Credential    *Credential            `protobuf:"bytes,1,opt,name=credential,proto3" json:"credential,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadCredentialResponse) Reset() {
	*x = UploadCredentialResponse{}
	mi := &file_credentials_v1_credentials_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadCredentialResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadCredentialResponse) ProtoMessage() {}

func (x *UploadCredentialResponse) ProtoReflect() protoreflect.Message {
	mi := &file_credentials_v1_credentials_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadCredentialResponse.ProtoReflect.Descriptor instead.
func (*UploadCredentialResponse) Descriptor() ([]byte, []int) {
	return file_credentials_v1_credentials_proto_rawDescGZIP(), []int{1}
}

func (x *UploadCredentialResponse) GetCredential() *Credential {
	if x != nil {
		return x.Credential
	}
	return nil
}

type GetCredentialRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CredentialId  string                 `protobuf:"bytes,1,opt,name=credential_id,json=credentialId,proto3" json:"credential_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCredentialRequest) Reset() {
	*x = GetCredentialRequest{}
	mi := &file_credentials_v1_credentials_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCredentialRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCredentialRequest) ProtoMessage() {}

func (x *GetCredentialRequest) ProtoReflect() protoreflect.Message {
	mi := &file_credentials_v1_credentials_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCredentialRequest.ProtoReflect.Descriptor instead.
func (*GetCredentialRequest) Descriptor() ([]byte, []int) {
	return file_credentials_v1_credentials_proto_rawDescGZIP(), []int{2}
}

func (x *GetCredentialRequest) GetCredentialId() string {
	if x != nil {
		return x.CredentialId
	}
	return ""
}

type GetCredentialResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Credential    *Credential            `protobuf:"bytes,1,opt,name=credential,proto3" json:"credential,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetCredentialResponse) Reset() {
	*x = GetCredentialResponse{}
	mi := &file_credentials_v1_credentials_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetCredentialResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCredentialResponse) ProtoMessage() {}

func (x *GetCredentialResponse) ProtoReflect() protoreflect.Message {
	mi := &file_credentials_v1_credentials_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCredentialResponse.ProtoReflect.Descriptor instead.
func (*GetCredentialResponse) Descriptor() ([]byte, []int) {
	return file_credentials_v1_credentials_proto_rawDescGZIP(), []int{3}
}

func (x *GetCredentialResponse) GetCredential() *Credential {
	if x != nil {
		return x.Credential
	}
	return nil
}

type ListCredentialsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCredentialsRequest) Reset() {
	*x = ListCredentialsRequest{}
	mi := &file_credentials_v1_credentials_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCredentialsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCredentialsRequest) ProtoMessage() {}

func (x *ListCredentialsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_credentials_v1_credentials_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCredentialsRequest.ProtoReflect.Descriptor instead.
func (*ListCredentialsRequest) Descriptor() ([]byte, []int) {
	return file_credentials_v1_credentials_proto_rawDescGZIP(), []int{4}
}

func (x *ListCredentialsRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type ListCredentialsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Credentials   []*Credential          `protobuf:"bytes,1,rep,name=credentials,proto3" json:"credentials,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListCredentialsResponse) Reset() {
	*x = ListCredentialsResponse{}
	mi := &file_credentials_v1_credentials_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListCredentialsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListCredentialsResponse) ProtoMessage() {}

func (x *ListCredentialsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_credentials_v1_credentials_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListCredentialsResponse.ProtoReflect.Descriptor instead.
func (*ListCredentialsResponse) Descriptor() ([]byte, []int) {
	return file_credentials_v1_credentials_proto_rawDescGZIP(), []int{5}
}

func (x *ListCredentialsResponse) GetCredentials() []*Credential {
	if x != nil {
		return x.Credentials
	}
	return nil
}

type DeleteCredentialRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	CredentialId  string                 `protobuf:"bytes,2,opt,name=credential_id,json=credentialId,proto3" json:"credential_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteCredentialRequest) Reset() {
	*x = DeleteCredentialRequest{}
	mi := &file_credentials_v1_credentials_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteCredentialRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteCredentialRequest) ProtoMessage() {}

func (x *DeleteCredentialRequest) ProtoReflect() protoreflect.Message {
	mi := &file_credentials_v1_credentials_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteCredentialRequest.ProtoReflect.Descriptor instead.
func (*DeleteCredentialRequest) Descriptor() ([]byte, []int) {
	return file_credentials_v1_credentials_proto_rawDescGZIP(), []int{6}
}

func (x *DeleteCredentialRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *DeleteCredentialRequest) GetCredentialId() string {
	if x != nil {
		return x.CredentialId
	}
	return ""
}

type DeleteCredentialResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       bool                   `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteCredentialResponse) Reset() {
	*x = DeleteCredentialResponse{}
	mi := &file_credentials_v1_credentials_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteCredentialResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteCredentialResponse) ProtoMessage() {}

func (x *DeleteCredentialResponse) ProtoReflect() protoreflect.Message {
	mi := &file_credentials_v1_credentials_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteCredentialResponse.ProtoReflect.Descriptor instead.
func (*DeleteCredentialResponse) Descriptor() ([]byte, []int) {
	return file_credentials_v1_credentials_proto_rawDescGZIP(), []int{7}
}

func (x *DeleteCredentialResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

type Credential struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Id                   string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProfileId            string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FileId               string                 `protobuf:"bytes,3,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	CertificateName      string                 `protobuf:"bytes,4,opt,name=certificate_name,json=certificateName,proto3" json:"certificate_name,omitempty"`
	Issuer               string                 `protobuf:"bytes,5,opt,name=issuer,proto3" json:"issuer,omitempty"`
	CertificateNumber    string                 `protobuf:"bytes,6,opt,name=certificate_number,json=certificateNumber,proto3" json:"certificate_number,omitempty"`
	CertificateUrl       string                 `protobuf:"bytes,7,opt,name=certificate_url,json=certificateUrl,proto3" json:"certificate_url,omitempty"`
	Status               string                 `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	VerificationNote     string                 `protobuf:"bytes,9,opt,name=verification_note,json=verificationNote,proto3" json:"verification_note,omitempty"`
	Matched              bool                   `protobuf:"varint,10,opt,name=matched,proto3" json:"matched,omitempty"`
	MatchReason          string                 `protobuf:"bytes,11,opt,name=match_reason,json=matchReason,proto3" json:"match_reason,omitempty"`
	CorroborationOutcome string                 `protobuf:"bytes,12,opt,name=corroboration_outcome,json=corroborationOutcome,proto3" json:"corroboration_outcome,omitempty"`
	CorroborationNote    string                 `protobuf:"bytes,13,opt,name=corroboration_note,json=corroborationNote,proto3" json:"corroboration_note,omitempty"`
	Skills               []string               `protobuf:"bytes,14,rep,name=skills,proto3" json:"skills,omitempty"`
	Level                int32                  `protobuf:"varint,15,opt,name=level,proto3" json:"level,omitempty"`
	Fingerprint          string                 `protobuf:"bytes,16,opt,name=fingerprint,proto3" json:"fingerprint,omitempty"`
	AnchorState          string                 `protobuf:"bytes,17,opt,name=anchor_state,json=anchorState,proto3" json:"anchor_state,omitempty"`
	AnchorTxRef          string                 `protobuf:"bytes,18,opt,name=anchor_tx_ref,json=anchorTxRef,proto3" json:"anchor_tx_ref,omitempty"`
	CreatedAt            string                 `protobuf:"bytes,19,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *Credential) Reset() {
	*x = Credential{}
	mi := &file_credentials_v1_credentials_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Credential) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Credential) ProtoMessage() {}

func (x *Credential) ProtoReflect() protoreflect.Message {
	mi := &file_credentials_v1_credentials_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Credential.ProtoReflect.Descriptor instead.
func (*Credential) Descriptor() ([]byte, []int) {
	return file_credentials_v1_credentials_proto_rawDescGZIP(), []int{8}
}

func (x *Credential) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Credential) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *Credential) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *Credential) GetCertificateName() string {
	if x != nil {
		return x.CertificateName
	}
	return ""
}

func (x *Credential) GetIssuer() string {
	if x != nil {
		return x.Issuer
	}
	return ""
}

func (x *Credential) GetCertificateNumber() string {
	if x != nil {
		return x.CertificateNumber
	}
	return ""
}

func (x *Credential) GetCertificateUrl() string {
	if x != nil {
		return x.CertificateUrl
	}
	return ""
}

func (x *Credential) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Credential) GetVerificationNote() string {
	if x != nil {
		return x.VerificationNote
	}
	return ""
}

func (x *Credential) GetMatched() bool {
	if x != nil {
		return x.Matched
	}
	return false
}

func (x *Credential) GetMatchReason() string {
	if x != nil {
		return x.MatchReason
	}
	return ""
}

func (x *Credential) GetCorroborationOutcome() string {
	if x != nil {
		return x.CorroborationOutcome
	}
	return ""
}

func (x *Credential) GetCorroborationNote() string {
	if x != nil {
		return x.CorroborationNote
	}
	return ""
}

func (x *Credential) GetSkills() []string {
	if x != nil {
		return x.Skills
	}
	return nil
}

func (x *Credential) GetLevel() int32 {
	if x != nil {
		return x.Level
	}
	return 0
}

func (x *Credential) GetFingerprint() string {
	if x != nil {
		return x.Fingerprint
	}
	return ""
}

func (x *Credential) GetAnchorState() string {
	if x != nil {
		return x.AnchorState
	}
	return ""
}

func (x *Credential) GetAnchorTxRef() string {
	if x != nil {
		return x.AnchorTxRef
	}
	return ""
}

func (x *Credential) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type CreateProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileRequest) Reset() {
	*x = CreateProfileRequest{}
	mi := &file_credentials_v1_credentials_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileRequest) ProtoMessage() {}

func (x *CreateProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_credentials_v1_credentials_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileRequest.ProtoReflect.Descriptor instead.
func (*CreateProfileRequest) Descriptor() ([]byte, []int) {
	return file_credentials_v1_credentials_proto_rawDescGZIP(), []int{9}
}

func (x *CreateProfileRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateProfileRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

type CreateProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       *Profile               `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileResponse) Reset() {
	*x = CreateProfileResponse{}
	mi := &file_credentials_v1_credentials_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileResponse) ProtoMessage() {}

func (x *CreateProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_credentials_v1_credentials_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileResponse.ProtoReflect.Descriptor instead.
func (*CreateProfileResponse) Descriptor() ([]byte, []int) {
	return file_credentials_v1_credentials_proto_rawDescGZIP(), []int{10}
}

func (x *CreateProfileResponse) GetProfile() *Profile {
	if x != nil {
		return x.Profile
	}
	return nil
}

type ListProfilesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesRequest) Reset() {
	*x = ListProfilesRequest{}
	mi := &file_credentials_v1_credentials_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesRequest) ProtoMessage() {}

func (x *ListProfilesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_credentials_v1_credentials_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesRequest.ProtoReflect.Descriptor instead.
func (*ListProfilesRequest) Descriptor() ([]byte, []int) {
	return file_credentials_v1_credentials_proto_rawDescGZIP(), []int{11}
}

type ListProfilesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profiles      []*Profile             `protobuf:"bytes,1,rep,name=profiles,proto3" json:"profiles,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesResponse) Reset() {
	*x = ListProfilesResponse{}
	mi := &file_credentials_v1_credentials_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesResponse) ProtoMessage() {}

func (x *ListProfilesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_credentials_v1_credentials_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesResponse.ProtoReflect.Descriptor instead.
func (*ListProfilesResponse) Descriptor() ([]byte, []int) {
	return file_credentials_v1_credentials_proto_rawDescGZIP(), []int{12}
}

func (x *ListProfilesResponse) GetProfiles() []*Profile {
	if x != nil {
		return x.Profiles
	}
	return nil
}

type Profile struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Profile) Reset() {
	*x = Profile{}
	mi := &file_credentials_v1_credentials_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Profile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Profile) ProtoMessage() {}

func (x *Profile) ProtoReflect() protoreflect.Message {
	mi := &file_credentials_v1_credentials_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Profile.ProtoReflect.Descriptor instead.
func (*Profile) Descriptor() ([]byte, []int) {
	return file_credentials_v1_credentials_proto_rawDescGZIP(), []int{13}
}

func (x *Profile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Profile) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Profile) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Profile) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ExportCredentialsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCredentialsRequest) Reset() {
	*x = ExportCredentialsRequest{}
	mi := &file_credentials_v1_credentials_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCredentialsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCredentialsRequest) ProtoMessage() {}

func (x *ExportCredentialsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_credentials_v1_credentials_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCredentialsRequest.ProtoReflect.Descriptor instead.
func (*ExportCredentialsRequest) Descriptor() ([]byte, []int) {
	return file_credentials_v1_credentials_proto_rawDescGZIP(), []int{14}
}

func (x *ExportCredentialsRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

type ExportCredentialsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCredentialsResponse) Reset() {
	*x = ExportCredentialsResponse{}
	mi := &file_credentials_v1_credentials_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCredentialsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCredentialsResponse) ProtoMessage() {}

func (x *ExportCredentialsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_credentials_v1_credentials_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCredentialsResponse.ProtoReflect.Descriptor instead.
func (*ExportCredentialsResponse) Descriptor() ([]byte, []int) {
	return file_credentials_v1_credentials_proto_rawDescGZIP(), []int{15}
}

func (x *ExportCredentialsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_credentials_v1_credentials_proto protoreflect.FileDescriptor

const file_credentials_v1_credentials_proto_rawDesc = "" +
	"\n" +
	" credentials/v1/credentials.proto\x12\x0ecredentials.v1\"\xc8\x02\n" +
	"\x17UploadCredentialRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\x12)\n" +
	"\x10certificate_name\x18\x04 \x01(\tR\x0fcertificateName\x12\x16\n" +
	"\x06issuer\x18\x05 \x01(\tR\x06issuer\x12-\n" +
	"\x12certificate_number\x18\x06 \x01(\tR\x11certificateNumber\x12'\n" +
	"\x0fcertificate_url\x18\a \x01(\tR\x0ecertificateUrl\x12\x16\n" +
	"\x06skills\x18\b \x01(\tR\x06skills\x12%\n" +
	"\x0edeclared_level\x18\t \x01(\x05R\rdeclaredLevel\"V\n" +
	"\x18UploadCredentialResponse\x12:\n" +
	"\n" +
	"credential\x18\x01 \x01(\v2\x1a.credentials.v1.CredentialR\n" +
	"credential\";\n" +
	"\x14GetCredentialRequest\x12#\n" +
	"\rcredential_id\x18\x01 \x01(\tR\fcredentialId\"S\n" +
	"\x15GetCredentialResponse\x12:\n" +
	"\n" +
	"credential\x18\x01 \x01(\v2\x1a.credentials.v1.CredentialR\n" +
	"credential\"7\n" +
	"\x16ListCredentialsRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\"W\n" +
	"\x17ListCredentialsResponse\x12<\n" +
	"\vcredentials\x18\x01 \x03(\v2\x1a.credentials.v1.CredentialR\vcredentials\"]\n" +
	"\x17DeleteCredentialRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12#\n" +
	"\rcredential_id\x18\x02 \x01(\tR\fcredentialId\"4\n" +
	"\x18DeleteCredentialResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\bR\adeleted\"\x8b\x05\n" +
	"\n" +
	"Credential\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\x12\x17\n" +
	"\afile_id\x18\x03 \x01(\tR\x06fileId\x12)\n" +
	"\x10certificate_name\x18\x04 \x01(\tR\x0fcertificateName\x12\x16\n" +
	"\x06issuer\x18\x05 \x01(\tR\x06issuer\x12-\n" +
	"\x12certificate_number\x18\x06 \x01(\tR\x11certificateNumber\x12'\n" +
	"\x0fcertificate_url\x18\a \x01(\tR\x0ecertificateUrl\x12\x16\n" +
	"\x06status\x18\b \x01(\tR\x06status\x12+\n" +
	"\x11verification_note\x18\t \x01(\tR\x10verificationNote\x12\x18\n" +
	"\amatched\x18\n" +
	" \x01(\bR\amatched\x12!\n" +
	"\fmatch_reason\x18\v \x01(\tR\vmatchReason\x123\n" +
	"\x15corroboration_outcome\x18\f \x01(\tR\x14corroborationOutcome\x12-\n" +
	"\x12corroboration_note\x18\r \x01(\tR\x11corroborationNote\x12\x16\n" +
	"\x06skills\x18\x0e \x03(\tR\x06skills\x12\x14\n" +
	"\x05level\x18\x0f \x01(\x05R\x05level\x12 \n" +
	"\vfingerprint\x18\x10 \x01(\tR\vfingerprint\x12!\n" +
	"\fanchor_state\x18\x11 \x01(\tR\vanchorState\x12\"\n" +
	"\ranchor_tx_ref\x18\x12 \x01(\tR\vanchorTxRef\x12\x1d\n" +
	"\n" +
	"created_at\x18\x13 \x01(\tR\tcreatedAt\"@\n" +
	"\x14CreateProfileRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\"J\n" +
	"\x15CreateProfileResponse\x121\n" +
	"\aprofile\x18\x01 \x01(\v2\x17.credentials.v1.ProfileR\aprofile\"\x15\n" +
	"\x13ListProfilesRequest\"K\n" +
	"\x14ListProfilesResponse\x123\n" +
	"\bprofiles\x18\x01 \x03(\v2\x17.credentials.v1.ProfileR\bprofiles\"b\n" +
	"\aProfile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\"9\n" +
	"\x18ExportCredentialsRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\"/\n" +
	"\x19ExportCredentialsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xa4\x03\n" +
	"\x12CredentialsService\x12e\n" +
	"\x10UploadCredential\x12'.credentials.v1.UploadCredentialRequest\x1a(.credentials.v1.UploadCredentialResponse\x12\\\n" +
	"\rGetCredential\x12$.credentials.v1.GetCredentialRequest\x1a%.credentials.v1.GetCredentialResponse\x12b\n" +
	"\x0fListCredentials\x12&.credentials.v1.ListCredentialsRequest\x1a'.credentials.v1.ListCredentialsResponse\x12e\n" +
	"\x10DeleteCredential\x12'.credentials.v1.DeleteCredentialRequest\x1a(.credentials.v1.DeleteCredentialResponse2\xca\x01\n" +
	"\x0fProfilesService\x12\\\n" +
	"\rCreateProfile\x12$.credentials.v1.CreateProfileRequest\x1a%.credentials.v1.CreateProfileResponse\x12Y\n" +
	"\fListProfiles\x12#.credentials.v1.ListProfilesRequest\x1a$.credentials.v1.ListProfilesResponse2y\n" +
	"\rExportService\x12h\n" +
	"\x11ExportCredentials\x12(.credentials.v1.ExportCredentialsRequest\x1a).credentials.v1.ExportCredentialsResponseBNZLgithub.com/microcred/credential-vault/gen/proto/credentials/v1;credentialsv1b\x06proto3"

var (
	file_credentials_v1_credentials_proto_rawDescOnce sync.Once
	file_credentials_v1_credentials_proto_rawDescData []byte
)

func file_credentials_v1_credentials_proto_rawDescGZIP() []byte {
	file_credentials_v1_credentials_proto_rawDescOnce.Do(func() {
		file_credentials_v1_credentials_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_credentials_v1_credentials_proto_rawDesc), len(file_credentials_v1_credentials_proto_rawDesc)))
	})
	return file_credentials_v1_credentials_proto_rawDescData
}

var file_credentials_v1_credentials_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_credentials_v1_credentials_proto_goTypes = []any{
	(*UploadCredentialRequest)(nil),   // 0: credentials.v1.UploadCredentialRequest
	(*UploadCredentialResponse)(nil),  // 1: credentials.v1.UploadCredentialResponse
	(*GetCredentialRequest)(nil),      // 2: credentials.v1.GetCredentialRequest
	(*GetCredentialResponse)(nil),     // 3: credentials.v1.GetCredentialResponse
	(*ListCredentialsRequest)(nil),    // 4: credentials.v1.ListCredentialsRequest
	(*ListCredentialsResponse)(nil),   // 5: credentials.v1.ListCredentialsResponse
	(*DeleteCredentialRequest)(nil),   // 6: credentials.v1.DeleteCredentialRequest
	(*DeleteCredentialResponse)(nil),  // 7: credentials.v1.DeleteCredentialResponse
	(*Credential)(nil),                // 8: credentials.v1.Credential
	(*CreateProfileRequest)(nil),      // 9: credentials.v1.CreateProfileRequest
	(*CreateProfileResponse)(nil),     // 10: credentials.v1.CreateProfileResponse
	(*ListProfilesRequest)(nil),       // 11: credentials.v1.ListProfilesRequest
	(*ListProfilesResponse)(nil),      // 12: credentials.v1.ListProfilesResponse
	(*Profile)(nil),                   // 13: credentials.v1.Profile
	(*ExportCredentialsRequest)(nil),  // 14: credentials.v1.ExportCredentialsRequest
	(*ExportCredentialsResponse)(nil), // 15: credentials.v1.ExportCredentialsResponse
}
var file_credentials_v1_credentials_proto_depIdxs = []int32{
	8,  // 0: credentials.v1.UploadCredentialResponse.credential:type_name -> credentials.v1.Credential
	8,  // 1: credentials.v1.GetCredentialResponse.credential:type_name -> credentials.v1.Credential
	8,  // 2: credentials.v1.ListCredentialsResponse.credentials:type_name -> credentials.v1.Credential
	13, // 3: credentials.v1.CreateProfileResponse.profile:type_name -> credentials.v1.Profile
	13, // 4: credentials.v1.ListProfilesResponse.profiles:type_name -> credentials.v1.Profile
	0,  // 5: credentials.v1.CredentialsService.UploadCredential:input_type -> credentials.v1.UploadCredentialRequest
	2,  // 6: credentials.v1.CredentialsService.GetCredential:input_type -> credentials.v1.GetCredentialRequest
	4,  // 7: credentials.v1.CredentialsService.ListCredentials:input_type -> credentials.v1.ListCredentialsRequest
	6,  // 8: credentials.v1.CredentialsService.DeleteCredential:input_type -> credentials.v1.DeleteCredentialRequest
	9,  // 9: credentials.v1.ProfilesService.CreateProfile:input_type -> credentials.v1.CreateProfileRequest
	11, // 10: credentials.v1.ProfilesService.ListProfiles:input_type -> credentials.v1.ListProfilesRequest
	14, // 11: credentials.v1.ExportService.ExportCredentials:input_type -> credentials.v1.ExportCredentialsRequest
	1,  // 12: credentials.v1.CredentialsService.UploadCredential:output_type -> credentials.v1.UploadCredentialResponse
	3,  // 13: credentials.v1.CredentialsService.GetCredential:output_type -> credentials.v1.GetCredentialResponse
	5,  // 14: credentials.v1.CredentialsService.ListCredentials:output_type -> credentials.v1.ListCredentialsResponse
	7,  // 15: credentials.v1.CredentialsService.DeleteCredential:output_type -> credentials.v1.DeleteCredentialResponse
	10, // 16: credentials.v1.ProfilesService.CreateProfile:output_type -> credentials.v1.CreateProfileResponse
	12, // 17: credentials.v1.ProfilesService.ListProfiles:output_type -> credentials.v1.ListProfilesResponse
	15, // 18: credentials.v1.ExportService.ExportCredentials:output_type -> credentials.v1.ExportCredentialsResponse
	12, // [12:19] is the sub-list for method output_type
	5,  // [5:12] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_credentials_v1_credentials_proto_init() }
func file_credentials_v1_credentials_proto_init() {
	if File_credentials_v1_credentials_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_credentials_v1_credentials_proto_rawDesc), len(file_credentials_v1_credentials_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_credentials_v1_credentials_proto_goTypes,
		DependencyIndexes: file_credentials_v1_credentials_proto_depIdxs,
		MessageInfos:      file_credentials_v1_credentials_proto_msgTypes,
	}.Build()
	File_credentials_v1_credentials_proto = out.File
	file_credentials_v1_credentials_proto_goTypes = nil
	file_credentials_v1_credentials_proto_depIdxs = nil
}
