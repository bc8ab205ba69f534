// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: pdfprobe/v1/pdfprobe.proto

package pdfprobev1

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

type AnalyzeDirectoryRequest struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	RootDir string                 `protobuf:"bytes,1,opt,name=root_dir,json=rootDir,proto3" json:"root_dir,omitempty"`
	// per-probe timeout in seconds; 0 means the server default
	TimeoutSeconds float64 `protobuf:"fixed64,2,opt,name=timeout_seconds,json=timeoutSeconds,proto3" json:"timeout_seconds,omitempty"`
	// files analyzed in parallel; 0 means the server default
	Concurrency int32 `protobuf:"varint,3,opt,name=concurrency,proto3" json:"concurrency,omitempty"`
	// cap on files to analyze; 0 means all
	Limit         int32 `protobuf:"varint,4,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeDirectoryRequest) Reset() {
	*x = AnalyzeDirectoryRequest{}
	mi := &file_pdfprobe_v1_pdfprobe_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeDirectoryRequest) ProtoMessage() {}

func (x *AnalyzeDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pdfprobe_v1_pdfprobe_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeDirectoryRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_pdfprobe_v1_pdfprobe_proto_rawDescGZIP(), []int{0}
}

func (x *AnalyzeDirectoryRequest) GetRootDir() string {
	if x != nil {
		return x.RootDir
	}
	return ""
}

func (x *AnalyzeDirectoryRequest) GetTimeoutSeconds() float64 {
	if x != nil {
		return x.TimeoutSeconds
	}
	return 0
}

func (x *AnalyzeDirectoryRequest) GetConcurrency() int32 {
	if x != nil {
		return x.Concurrency
	}
	return 0
}

func (x *AnalyzeDirectoryRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type AnalyzeDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	TotalFiles    int32                  `protobuf:"varint,2,opt,name=total_files,json=totalFiles,proto3" json:"total_files,omitempty"`
	BestBackend   string                 `protobuf:"bytes,3,opt,name=best_backend,json=bestBackend,proto3" json:"best_backend,omitempty"`
	Buckets       []*BucketCount         `protobuf:"bytes,4,rep,name=buckets,proto3" json:"buckets,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeDirectoryResponse) Reset() {
	*x = AnalyzeDirectoryResponse{}
	mi := &file_pdfprobe_v1_pdfprobe_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeDirectoryResponse) ProtoMessage() {}

func (x *AnalyzeDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pdfprobe_v1_pdfprobe_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeDirectoryResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_pdfprobe_v1_pdfprobe_proto_rawDescGZIP(), []int{1}
}

func (x *AnalyzeDirectoryResponse) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *AnalyzeDirectoryResponse) GetTotalFiles() int32 {
	if x != nil {
		return x.TotalFiles
	}
	return 0
}

func (x *AnalyzeDirectoryResponse) GetBestBackend() string {
	if x != nil {
		return x.BestBackend
	}
	return ""
}

func (x *AnalyzeDirectoryResponse) GetBuckets() []*BucketCount {
	if x != nil {
		return x.Buckets
	}
	return nil
}

type BucketCount struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Bucket        string                 `protobuf:"bytes,1,opt,name=bucket,proto3" json:"bucket,omitempty"`
	Count         int32                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BucketCount) Reset() {
	*x = BucketCount{}
	mi := &file_pdfprobe_v1_pdfprobe_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BucketCount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BucketCount) ProtoMessage() {}

func (x *BucketCount) ProtoReflect() protoreflect.Message {
	mi := &file_pdfprobe_v1_pdfprobe_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BucketCount.ProtoReflect.Descriptor instead.
func (*BucketCount) Descriptor() ([]byte, []int) {
	return file_pdfprobe_v1_pdfprobe_proto_rawDescGZIP(), []int{2}
}

func (x *BucketCount) GetBucket() string {
	if x != nil {
		return x.Bucket
	}
	return ""
}

func (x *BucketCount) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type GetRunRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRunRequest) Reset() {
	*x = GetRunRequest{}
	mi := &file_pdfprobe_v1_pdfprobe_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRunRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRunRequest) ProtoMessage() {}

func (x *GetRunRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pdfprobe_v1_pdfprobe_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRunRequest.ProtoReflect.Descriptor instead.
func (*GetRunRequest) Descriptor() ([]byte, []int) {
	return file_pdfprobe_v1_pdfprobe_proto_rawDescGZIP(), []int{3}
}

func (x *GetRunRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

type GetRunResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	RootDir       string                 `protobuf:"bytes,2,opt,name=root_dir,json=rootDir,proto3" json:"root_dir,omitempty"`
	Backends      []string               `protobuf:"bytes,3,rep,name=backends,proto3" json:"backends,omitempty"`
	TotalFiles    int32                  `protobuf:"varint,4,opt,name=total_files,json=totalFiles,proto3" json:"total_files,omitempty"`
	BestBackend   string                 `protobuf:"bytes,5,opt,name=best_backend,json=bestBackend,proto3" json:"best_backend,omitempty"`
	Results       []*FileResult          `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRunResponse) Reset() {
	*x = GetRunResponse{}
	mi := &file_pdfprobe_v1_pdfprobe_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRunResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRunResponse) ProtoMessage() {}

func (x *GetRunResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pdfprobe_v1_pdfprobe_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRunResponse.ProtoReflect.Descriptor instead.
func (*GetRunResponse) Descriptor() ([]byte, []int) {
	return file_pdfprobe_v1_pdfprobe_proto_rawDescGZIP(), []int{4}
}

func (x *GetRunResponse) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *GetRunResponse) GetRootDir() string {
	if x != nil {
		return x.RootDir
	}
	return ""
}

func (x *GetRunResponse) GetBackends() []string {
	if x != nil {
		return x.Backends
	}
	return nil
}

func (x *GetRunResponse) GetTotalFiles() int32 {
	if x != nil {
		return x.TotalFiles
	}
	return 0
}

func (x *GetRunResponse) GetBestBackend() string {
	if x != nil {
		return x.BestBackend
	}
	return ""
}

func (x *GetRunResponse) GetResults() []*FileResult {
	if x != nil {
		return x.Results
	}
	return nil
}

type FileResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	Score         float64                `protobuf:"fixed64,2,opt,name=score,proto3" json:"score,omitempty"`
	Bucket        string                 `protobuf:"bytes,3,opt,name=bucket,proto3" json:"bucket,omitempty"`
	Recommended   string                 `protobuf:"bytes,4,opt,name=recommended,proto3" json:"recommended,omitempty"`
	Outcomes      []*Outcome             `protobuf:"bytes,5,rep,name=outcomes,proto3" json:"outcomes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FileResult) Reset() {
	*x = FileResult{}
	mi := &file_pdfprobe_v1_pdfprobe_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FileResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FileResult) ProtoMessage() {}

func (x *FileResult) ProtoReflect() protoreflect.Message {
	mi := &file_pdfprobe_v1_pdfprobe_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FileResult.ProtoReflect.Descriptor instead.
func (*FileResult) Descriptor() ([]byte, []int) {
	return file_pdfprobe_v1_pdfprobe_proto_rawDescGZIP(), []int{5}
}

func (x *FileResult) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *FileResult) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *FileResult) GetBucket() string {
	if x != nil {
		return x.Bucket
	}
	return ""
}

func (x *FileResult) GetRecommended() string {
	if x != nil {
		return x.Recommended
	}
	return ""
}

func (x *FileResult) GetOutcomes() []*Outcome {
	if x != nil {
		return x.Outcomes
	}
	return nil
}

type Outcome struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Backend       string                 `protobuf:"bytes,1,opt,name=backend,proto3" json:"backend,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Warnings      int32                  `protobuf:"varint,3,opt,name=warnings,proto3" json:"warnings,omitempty"`
	ElapsedMs     int64                  `protobuf:"varint,4,opt,name=elapsed_ms,json=elapsedMs,proto3" json:"elapsed_ms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Outcome) Reset() {
	*x = Outcome{}
	mi := &file_pdfprobe_v1_pdfprobe_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Outcome) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Outcome) ProtoMessage() {}

func (x *Outcome) ProtoReflect() protoreflect.Message {
	mi := &file_pdfprobe_v1_pdfprobe_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Outcome.ProtoReflect.Descriptor instead.
func (*Outcome) Descriptor() ([]byte, []int) {
	return file_pdfprobe_v1_pdfprobe_proto_rawDescGZIP(), []int{6}
}

func (x *Outcome) GetBackend() string {
	if x != nil {
		return x.Backend
	}
	return ""
}

func (x *Outcome) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Outcome) GetWarnings() int32 {
	if x != nil {
		return x.Warnings
	}
	return 0
}

func (x *Outcome) GetElapsedMs() int64 {
	if x != nil {
		return x.ElapsedMs
	}
	return 0
}

var File_pdfprobe_v1_pdfprobe_proto protoreflect.FileDescriptor

const file_pdfprobe_v1_pdfprobe_proto_rawDesc = "" +
	"\n" +
	"\x1apdfprobe/v1/pdfprobe.proto\x12\vpdfprobe.v1\"\x95\x01\n" +
	"\x17AnalyzeDirectoryRequest\x12\x19\n" +
	"\broot_dir\x18\x01 \x01(\tR\arootDir\x12'\n" +
	"\x0ftimeout_seconds\x18\x02 \x01(\x01R\x0etimeoutSeconds\x12 \n" +
	"\vconcurrency\x18\x03 \x01(\x05R\vconcurrency\x12\x14\n" +
	"\x05limit\x18\x04 \x01(\x05R\x05limit\"\xa9\x01\n" +
	"\x18AnalyzeDirectoryResponse\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12\x1f\n" +
	"\vtotal_files\x18\x02 \x01(\x05R\n" +
	"totalFiles\x12!\n" +
	"\fbest_backend\x18\x03 \x01(\tR\vbestBackend\x122\n" +
	"\abuckets\x18\x04 \x03(\v2\x18.pdfprobe.v1.BucketCountR\abuckets\";\n" +
	"\vBucketCount\x12\x16\n" +
	"\x06bucket\x18\x01 \x01(\tR\x06bucket\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x05R\x05count\"&\n" +
	"\rGetRunRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\"\xd5\x01\n" +
	"\x0eGetRunResponse\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12\x19\n" +
	"\broot_dir\x18\x02 \x01(\tR\arootDir\x12\x1a\n" +
	"\bbackends\x18\x03 \x03(\tR\bbackends\x12\x1f\n" +
	"\vtotal_files\x18\x04 \x01(\x05R\n" +
	"totalFiles\x12!\n" +
	"\fbest_backend\x18\x05 \x01(\tR\vbestBackend\x121\n" +
	"\aresults\x18\x06 \x03(\v2\x17.pdfprobe.v1.FileResultR\aresults\"\xa2\x01\n" +
	"\n" +
	"FileResult\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x14\n" +
	"\x05score\x18\x02 \x01(\x01R\x05score\x12\x16\n" +
	"\x06bucket\x18\x03 \x01(\tR\x06bucket\x12 \n" +
	"\vrecommended\x18\x04 \x01(\tR\vrecommended\x120\n" +
	"\boutcomes\x18\x05 \x03(\v2\x14.pdfprobe.v1.OutcomeR\boutcomes\"v\n" +
	"\aOutcome\x12\x18\n" +
	"\abackend\x18\x01 \x01(\tR\abackend\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1a\n" +
	"\bwarnings\x18\x03 \x01(\x05R\bwarnings\x12\x1d\n" +
	"\n" +
	"elapsed_ms\x18\x04 \x01(\x03R\telapsedMs2\xb5\x01\n" +
	"\x0fAnalyzerService\x12_\n" +
	"\x10AnalyzeDirectory\x12$.pdfprobe.v1.AnalyzeDirectoryRequest\x1a%.pdfprobe.v1.AnalyzeDirectoryResponse\x12A\n" +
	"\x06GetRun\x12\x1a.pdfprobe.v1.GetRunRequest\x1a\x1b.pdfprobe.v1.GetRunResponseB9Z7github.com/avelsher/pdfprobe/gen/pdfprobe/v1;pdfprobev1b\x06proto3"

var (
	file_pdfprobe_v1_pdfprobe_proto_rawDescOnce sync.Once
	file_pdfprobe_v1_pdfprobe_proto_rawDescData []byte
)

func file_pdfprobe_v1_pdfprobe_proto_rawDescGZIP() []byte {
	file_pdfprobe_v1_pdfprobe_proto_rawDescOnce.Do(func() {
		file_pdfprobe_v1_pdfprobe_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_pdfprobe_v1_pdfprobe_proto_rawDesc), len(file_pdfprobe_v1_pdfprobe_proto_rawDesc)))
	})
	return file_pdfprobe_v1_pdfprobe_proto_rawDescData
}

var file_pdfprobe_v1_pdfprobe_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_pdfprobe_v1_pdfprobe_proto_goTypes = []any{
	(*AnalyzeDirectoryRequest)(nil),  // 0: pdfprobe.v1.AnalyzeDirectoryRequest
	(*AnalyzeDirectoryResponse)(nil), // 1: pdfprobe.v1.AnalyzeDirectoryResponse
	(*BucketCount)(nil),              // 2: pdfprobe.v1.BucketCount
	(*GetRunRequest)(nil),            // 3: pdfprobe.v1.GetRunRequest
	(*GetRunResponse)(nil),           // 4: pdfprobe.v1.GetRunResponse
	(*FileResult)(nil),               // 5: pdfprobe.v1.FileResult
	(*Outcome)(nil),                  // 6: pdfprobe.v1.Outcome
}
var file_pdfprobe_v1_pdfprobe_proto_depIdxs = []int32{
	2, // 0: pdfprobe.v1.AnalyzeDirectoryResponse.buckets:type_name -> pdfprobe.v1.BucketCount
	5, // 1: pdfprobe.v1.GetRunResponse.results:type_name -> pdfprobe.v1.FileResult
	6, // 2: pdfprobe.v1.FileResult.outcomes:type_name -> pdfprobe.v1.Outcome
	0, // 3: pdfprobe.v1.AnalyzerService.AnalyzeDirectory:input_type -> pdfprobe.v1.AnalyzeDirectoryRequest
	3, // 4: pdfprobe.v1.AnalyzerService.GetRun:input_type -> pdfprobe.v1.GetRunRequest
	1, // 5: pdfprobe.v1.AnalyzerService.AnalyzeDirectory:output_type -> pdfprobe.v1.AnalyzeDirectoryResponse
	4, // 6: pdfprobe.v1.AnalyzerService.GetRun:output_type -> pdfprobe.v1.GetRunResponse
	5, // [5:7] is the sub-list for method output_type
	3, // [3:5] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_pdfprobe_v1_pdfprobe_proto_init() }
func file_pdfprobe_v1_pdfprobe_proto_init() {
	if File_pdfprobe_v1_pdfprobe_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_pdfprobe_v1_pdfprobe_proto_rawDesc), len(file_pdfprobe_v1_pdfprobe_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_pdfprobe_v1_pdfprobe_proto_goTypes,
		DependencyIndexes: file_pdfprobe_v1_pdfprobe_proto_depIdxs,
		MessageInfos:      file_pdfprobe_v1_pdfprobe_proto_msgTypes,
	}.Build()
	File_pdfprobe_v1_pdfprobe_proto = out.File
	file_pdfprobe_v1_pdfprobe_proto_goTypes = nil
	file_pdfprobe_v1_pdfprobe_proto_depIdxs = nil
}
